// Package covering computes and caches geometry coverings.
package covering

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mohammed-shakir/hexgrid/internal/cache"
	"github.com/mohammed-shakir/hexgrid/internal/cache/keys"
	"github.com/mohammed-shakir/hexgrid/internal/observability"
	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// batchStore is the optional bulk path of the shared tier.
type batchStore interface {
	MGet(ctx context.Context, keys []string) (map[string][]byte, error)
	MSetWithTTL(ctx context.Context, kv map[string][]byte, ttl time.Duration) error
}

type Config struct {
	TTL       time.Duration
	OpTimeout time.Duration
	MaxCells  int
}

type Service struct {
	mem    cache.Store
	shared cache.Store
	log    *zerolog.Logger
	cfg    Config
}

// New builds a covering service. mem is required; shared may be nil when
// no Redis tier is configured.
func New(mem, shared cache.Store, log *zerolog.Logger, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = 250 * time.Millisecond
	}
	return &Service{mem: mem, shared: shared, log: log, cfg: cfg}
}

// ErrTooLarge rejects requests whose covering bound exceeds the
// configured ceiling before any cell is produced.
type ErrTooLarge struct {
	Bound, Limit int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("covering may produce %d cells, limit is %d", e.Bound, e.Limit)
}

// Cover returns the cells covering the request's geometry, consulting
// the in-process tier, then the shared tier, then computing.
func (s *Service) Cover(ctx context.Context, req Request) ([]h3.Cell, error) {
	if err := s.checkBound(req); err != nil {
		return nil, err
	}
	key := keys.Cover(req.Kind, req.Canonical, int(req.Resolution))

	if cells, ok := s.lookup(ctx, key); ok {
		return cells, nil
	}

	cells := s.compute(req)
	s.fill(ctx, map[string][]byte{key: encodeCells(cells)})
	return cells, nil
}

// CoverBatch covers several requests, batching shared-tier traffic into
// one MGET and one pipelined fill. Results are positional.
func (s *Service) CoverBatch(ctx context.Context, reqs []Request) ([][]h3.Cell, error) {
	for _, req := range reqs {
		if err := s.checkBound(req); err != nil {
			return nil, err
		}
	}

	out := make([][]h3.Cell, len(reqs))
	ks := make([]string, len(reqs))
	missing := make([]int, 0, len(reqs))
	for i, req := range reqs {
		ks[i] = keys.Cover(req.Kind, req.Canonical, int(req.Resolution))
		if v, ok, err := s.mem.Get(ctx, ks[i]); err == nil && ok {
			observability.IncCacheHit("mem")
			out[i] = decodeCells(v)
			continue
		}
		observability.IncCacheMiss("mem")
		missing = append(missing, i)
	}

	if bs, ok := s.shared.(batchStore); ok && s.shared != nil && len(missing) > 0 {
		opCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
		wanted := make([]string, len(missing))
		for j, i := range missing {
			wanted[j] = ks[i]
		}
		found, err := bs.MGet(opCtx, wanted)
		cancel()
		if err != nil {
			s.log.Warn().Err(err).Int("keys", len(wanted)).Msg("shared cache mget failed")
		}
		still := missing[:0]
		for _, i := range missing {
			if v, ok := found[ks[i]]; ok {
				observability.IncCacheHit("shared")
				out[i] = decodeCells(v)
				_ = s.mem.Set(ctx, ks[i], v, s.cfg.TTL)
				continue
			}
			observability.IncCacheMiss("shared")
			still = append(still, i)
		}
		missing = still
	}

	fills := make(map[string][]byte, len(missing))
	for _, i := range missing {
		out[i] = s.compute(reqs[i])
		fills[ks[i]] = encodeCells(out[i])
	}
	s.fill(ctx, fills)
	return out, nil
}

func (s *Service) checkBound(req Request) error {
	if s.cfg.MaxCells <= 0 {
		return nil
	}
	if bound := req.Geometry.MaxCellsCount(req.Resolution); bound > s.cfg.MaxCells {
		return &ErrTooLarge{Bound: bound, Limit: s.cfg.MaxCells}
	}
	return nil
}

func (s *Service) lookup(ctx context.Context, key string) ([]h3.Cell, bool) {
	if v, ok, err := s.mem.Get(ctx, key); err == nil && ok {
		observability.IncCacheHit("mem")
		return decodeCells(v), true
	}
	observability.IncCacheMiss("mem")

	if s.shared == nil {
		return nil, false
	}
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()
	v, ok, err := s.shared.Get(opCtx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("shared cache get failed")
		return nil, false
	}
	if !ok {
		observability.IncCacheMiss("shared")
		return nil, false
	}
	observability.IncCacheHit("shared")
	_ = s.mem.Set(ctx, key, v, s.cfg.TTL)
	return decodeCells(v), true
}

func (s *Service) compute(req Request) []h3.Cell {
	start := time.Now()
	var cells []h3.Cell
	for c := range req.Geometry.ToCells(req.Resolution) {
		cells = append(cells, c)
	}
	observability.ObserveCover(req.Kind, int(req.Resolution), len(cells), time.Since(start).Seconds())
	return cells
}

func (s *Service) fill(ctx context.Context, kv map[string][]byte) {
	if len(kv) == 0 {
		return
	}
	for k, v := range kv {
		_ = s.mem.Set(ctx, k, v, s.cfg.TTL)
	}
	if s.shared == nil {
		return
	}
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OpTimeout)
	defer cancel()
	if bs, ok := s.shared.(batchStore); ok {
		if err := bs.MSetWithTTL(opCtx, kv, s.cfg.TTL); err != nil {
			s.log.Warn().Err(err).Int("keys", len(kv)).Msg("shared cache fill failed")
		}
		return
	}
	for k, v := range kv {
		if err := s.shared.Set(opCtx, k, v, s.cfg.TTL); err != nil {
			s.log.Warn().Err(err).Str("key", k).Msg("shared cache fill failed")
		}
	}
}

// Cells are cached as fixed-width big endian words, preserving order.
func encodeCells(cells []h3.Cell) []byte {
	out := make([]byte, 8*len(cells))
	for i, c := range cells {
		binary.BigEndian.PutUint64(out[8*i:], uint64(c))
	}
	return out
}

func decodeCells(b []byte) []h3.Cell {
	cells := make([]h3.Cell, 0, len(b)/8)
	for len(b) >= 8 {
		cells = append(cells, h3.Cell(binary.BigEndian.Uint64(b[:8])))
		b = b[8:]
	}
	return cells
}
