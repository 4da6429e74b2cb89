package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mohammed-shakir/hexgrid/internal/observability"
)

func assertHasMetricLine(t *testing.T, body, metric string, wantLabels ...string) {
	t.Helper()
	for ln := range strings.SplitSeq(body, "\n") {
		if !strings.HasPrefix(ln, metric+"{") {
			continue
		}
		ok := true
		for _, s := range wantLabels {
			if !strings.Contains(ln, s) {
				ok = false
				break
			}
		}
		if ok && (len(ln) > 0 && ln[len(ln)-1] >= '0' && ln[len(ln)-1] <= '9') {
			return
		}
	}
	t.Fatalf("expected a %s line with labels %v; got:\n%s", metric, wantLabels, body)
}

func Test_AppMetrics_CustomRegistry_Smoke(t *testing.T) {
	p := Init(BuildInfo{Version: "test"})
	observability.Init(p.Registerer())

	start := time.Now()
	observability.ObserveHTTP(http.MethodPost, "/v1/cover", 200, time.Since(start).Seconds())
	observability.ObserveHTTP(http.MethodPost, "/v1/cover", 413, 0.001)

	observability.ObserveCover("polygon", 5, 37, 0.004)
	observability.ObserveCacheOp("mget", nil, 0.002)
	observability.IncCacheHit("mem")
	observability.IncCacheHit("shared")
	observability.IncCacheMiss("shared")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	p.Handler().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	body := rr.Body.String()
	mustContain := []string{
		`http_request_duration_seconds_bucket`,
		`cache_op_duration_seconds_count`,
		`cover_cells_count{kind="polygon",resolution="5"} `,
		`cache_results_total{outcome="hit",tier="mem"} `,
		`cache_results_total{outcome="miss",tier="shared"} `,
	}
	for _, s := range mustContain {
		if !strings.Contains(body, s) {
			t.Fatalf("expected metrics to contain %q;\n---\n%s", s, body)
		}
	}

	assertHasMetricLine(t, body, "http_requests_total",
		`method="POST"`, `route="/v1/cover"`, `status="200"`)
	assertHasMetricLine(t, body, "http_requests_total",
		`method="POST"`, `route="/v1/cover"`, `status="413"`)
	assertHasMetricLine(t, body, "hexgrid_build_info",
		`version="test"`)
}
