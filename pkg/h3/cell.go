package h3

import (
	"fmt"
	"iter"
	"strconv"
)

// Cell is a 64-bit cell index. The bit layout, most significant first:
//
//	1 bit  reserved, always 0
//	4 bits index mode, always 1 for cells
//	3 bits reserved, always 0
//	4 bits resolution, 0..15
//	7 bits base cell, 0..121
//	3 bits per-resolution digit for resolutions 1..15; slots below the
//	       cell's resolution hold the padding value 7
//
// The zero value is not a valid cell. Construct cells with NewCell,
// ParseCell, FirstCell or LatLngToCell.
type Cell uint64

const (
	cellMode = 1

	modeOffset     = 59
	modeMask       = uint64(0xf) << modeOffset
	reservedMask   = uint64(1)<<63 | uint64(0x7)<<56
	resOffset      = 52
	resMask        = uint64(0xf) << resOffset
	baseCellOffset = 45
	baseCellMask   = uint64(0x7f) << baseCellOffset
	digitsMask     = uint64(1)<<baseCellOffset - 1
)

func digitOffset(r Resolution) uint {
	return uint(3 * (int(MaxResolution) - int(r)))
}

// NewCell validates a raw 64-bit value as a cell index.
func NewCell(v uint64) (Cell, error) {
	if v&reservedMask != 0 {
		return 0, &InvalidCellError{Value: v, Reason: "reserved bits set"}
	}
	if (v&modeMask)>>modeOffset != cellMode {
		return 0, &InvalidCellError{Value: v, Reason: "wrong index mode"}
	}
	c := Cell(v)
	base := c.Base()
	if base > MaxBaseCell {
		return 0, &InvalidCellError{Value: v, Reason: "base cell out of range"}
	}
	res := c.Resolution()
	pentagon := base.IsPentagon()
	for r := Resolution1; r <= MaxResolution; r++ {
		d := c.digit(r)
		if r <= res {
			if d == DirectionInvalid {
				return 0, &InvalidCellError{Value: v, Reason: "unused digit before the cell's resolution"}
			}
			if pentagon && d == DirectionK {
				// the k sextant does not exist under a pentagon
				return 0, &InvalidCellError{Value: v, Reason: "k digit in a pentagon's deleted subsequence"}
			}
			if pentagon && d != DirectionCenter {
				pentagon = false
			}
		} else if d != DirectionInvalid {
			return 0, &InvalidCellError{Value: v, Reason: "used digit past the cell's resolution"}
		}
	}
	return c, nil
}

// IsValid reports whether the raw value encodes a valid cell index.
func (c Cell) IsValid() bool {
	_, err := NewCell(uint64(c))
	return err == nil
}

// Resolution returns the cell's resolution.
func (c Cell) Resolution() Resolution {
	return Resolution((uint64(c) & resMask) >> resOffset)
}

// Base returns the base cell the index descends from.
func (c Cell) Base() BaseCell {
	return BaseCell((uint64(c) & baseCellMask) >> baseCellOffset)
}

// IsPentagon reports whether the cell is one of the pentagons at its
// resolution (a pentagon base cell with an all-center path).
func (c Cell) IsPentagon() bool {
	return c.Base().IsPentagon() && c.leadingNonZeroDigit() == DirectionCenter
}

// digit returns the path digit for resolution r, 1 <= r <= 15.
func (c Cell) digit(r Resolution) Direction {
	return Direction((uint64(c) >> digitOffset(r)) & 0x7)
}

func (c Cell) setDigit(r Resolution, d Direction) Cell {
	off := digitOffset(r)
	return Cell(uint64(c)&^(uint64(0x7)<<off) | uint64(d)<<off)
}

func (c Cell) setBase(b BaseCell) Cell {
	return Cell(uint64(c)&^baseCellMask | uint64(b)<<baseCellOffset)
}

func (c Cell) setResolution(r Resolution) Cell {
	return Cell(uint64(c)&^resMask | uint64(r)<<resOffset)
}

// leadingNonZeroDigit returns the first non-center digit on the cell's
// path, or DirectionCenter if every digit is the center.
func (c Cell) leadingNonZeroDigit() Direction {
	for r := Resolution1; r <= c.Resolution(); r++ {
		if d := c.digit(r); d != DirectionCenter {
			return d
		}
	}
	return DirectionCenter
}

// deletedSlot reports whether the digit slot at resolution r sits in the
// deleted subsequence of a pentagon: the base cell is a pentagon and every
// coarser digit is the center. The K digit is forbidden in such a slot.
func (c Cell) deletedSlot(r Resolution) bool {
	if !c.Base().IsPentagon() {
		return false
	}
	for rr := Resolution1; rr < r; rr++ {
		if c.digit(rr) != DirectionCenter {
			return false
		}
	}
	return true
}

// FirstCell returns the lowest-ordered cell at the given resolution: base
// cell 0 with an all-center path.
func FirstCell(r Resolution) Cell {
	c := Cell(uint64(cellMode)<<modeOffset | digitsMask)
	c = c.setResolution(r)
	for rr := Resolution1; rr <= r; rr++ {
		c = c.setDigit(rr, DirectionCenter)
	}
	return c
}

// LastCell returns the highest-ordered cell at the given resolution: base
// cell 121 with an all-IJ path.
func LastCell(r Resolution) Cell {
	c := FirstCell(r).setBase(MaxBaseCell)
	for rr := Resolution1; rr <= r; rr++ {
		c = c.setDigit(rr, DirectionIJ)
	}
	return c
}

// Succ returns the next cell in index order at the same resolution, or
// false if c is the last cell. The successor of a cell whose deepest digit
// is IJ carries into the coarser digits, and eventually into the base
// cell; K digits are skipped inside a pentagon's deleted subsequence.
func (c Cell) Succ() (Cell, bool) {
	for r := c.Resolution(); ; r-- {
		if r == Resolution0 {
			b := c.Base()
			if b >= MaxBaseCell {
				return 0, false
			}
			return c.setBase(b + 1), true
		}
		d := c.digit(r) + 1
		if d == DirectionK && c.deletedSlot(r) {
			d = DirectionJ
		}
		if d < DirectionInvalid {
			return c.setDigit(r, d), true
		}
		c = c.setDigit(r, DirectionCenter) // carry
	}
}

// Pred returns the previous cell in index order at the same resolution, or
// false if c is the first cell.
func (c Cell) Pred() (Cell, bool) {
	for r := c.Resolution(); ; r-- {
		if r == Resolution0 {
			b := c.Base()
			if b == 0 {
				return 0, false
			}
			return c.setBase(b - 1), true
		}
		d := c.digit(r)
		if d == DirectionCenter {
			c = c.setDigit(r, DirectionIJ) // borrow
			continue
		}
		d--
		if d == DirectionK && c.deletedSlot(r) {
			d = DirectionCenter
		}
		return c.setDigit(r, d), true
	}
}

// Parent returns the ancestor of the cell at the given coarser resolution.
// ok is false when r is finer than the cell's own resolution.
func (c Cell) Parent(r Resolution) (Cell, bool) {
	res := c.Resolution()
	if r > res {
		return 0, false
	}
	if r == res {
		return c, true
	}
	p := c.setResolution(r)
	for rr := r + 1; rr <= res; rr++ {
		p = p.setDigit(rr, DirectionInvalid)
	}
	return p, true
}

// CenterChild returns the center descendant of the cell at the given finer
// resolution. ok is false when r is coarser than the cell's resolution.
func (c Cell) CenterChild(r Resolution) (Cell, bool) {
	res := c.Resolution()
	if r < res {
		return 0, false
	}
	ch := c.setResolution(r)
	for rr := res + 1; rr <= r; rr++ {
		ch = ch.setDigit(rr, DirectionCenter)
	}
	return ch, true
}

// hexChildCount is 7^n.
func hexChildCount(n int) uint64 {
	count := uint64(1)
	for i := 0; i < n; i++ {
		count *= 7
	}
	return count
}

// pentagonChildCount counts the descendants n resolutions below a
// pentagon: 1 + 5*(7^n - 1)/6.
func pentagonChildCount(n int) uint64 {
	return 1 + 5*(hexChildCount(n)-1)/6
}

// ChildrenCount returns the number of descendants the cell has at the
// given finer resolution. ok is false when r is coarser than the cell's
// resolution.
func (c Cell) ChildrenCount(r Resolution) (uint64, bool) {
	res := c.Resolution()
	if r < res {
		return 0, false
	}
	n := int(r - res)
	if c.IsPentagon() {
		return pentagonChildCount(n), true
	}
	return hexChildCount(n), true
}

// ChildPosition returns the zero-based position of the cell within the
// ordered list of children of its ancestor at the given coarser
// resolution. ok is false when r is finer than the cell's resolution.
func (c Cell) ChildPosition(r Resolution) (uint64, bool) {
	res := c.Resolution()
	if r > res {
		return 0, false
	}
	pos := uint64(0)
	pentagonal := c.Base().IsPentagon() && func() bool {
		for rr := Resolution1; rr <= r; rr++ {
			if c.digit(rr) != DirectionCenter {
				return false
			}
		}
		return true
	}()
	for rr := r + 1; rr <= res; rr++ {
		d := c.digit(rr)
		n := int(res - rr)
		if pentagonal {
			if d != DirectionCenter {
				// the center subtree plus the hexagon subtrees of the
				// digits between J and d (K does not occur here)
				pos += pentagonChildCount(n) + uint64(d-DirectionJ)*hexChildCount(n)
				pentagonal = false
			}
		} else {
			pos += uint64(d) * hexChildCount(n)
		}
	}
	return pos, true
}

// ChildAt returns the cell's descendant at the given zero-based child
// position and finer resolution; the inverse of ChildPosition. ok is
// false when r is coarser than the cell's resolution or the position is
// out of range.
func (c Cell) ChildAt(pos uint64, r Resolution) (Cell, bool) {
	res := c.Resolution()
	if r < res {
		return 0, false
	}
	if count, _ := c.ChildrenCount(r); pos >= count {
		return 0, false
	}
	child := c.setResolution(r)
	pentagonal := c.IsPentagon()
	for rr := res + 1; rr <= r; rr++ {
		n := int(r - rr)
		var d Direction
		if pentagonal {
			center := pentagonChildCount(n)
			if pos < center {
				d = DirectionCenter
			} else {
				pos -= center
				d = DirectionJ + Direction(pos/hexChildCount(n))
				pos %= hexChildCount(n)
				pentagonal = false
			}
		} else {
			d = Direction(pos / hexChildCount(n))
			pos %= hexChildCount(n)
		}
		child = child.setDigit(rr, d)
	}
	return child, true
}

// Children iterates over the cell's descendants at the given finer
// resolution in index order.
func (c Cell) Children(r Resolution) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		count, ok := c.ChildrenCount(r)
		if !ok {
			return
		}
		cur, _ := c.CenterChild(r)
		for i := uint64(0); i < count; i++ {
			if !yield(cur) {
				return
			}
			cur, _ = cur.Succ()
		}
	}
}

// rotate60ccw rotates the cell's whole path 60 degrees counterclockwise.
func (c Cell) rotate60ccw() Cell {
	for r := Resolution1; r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.digit(r).rotate60ccw())
	}
	return c
}

// rotate60cw rotates the cell's whole path 60 degrees clockwise.
func (c Cell) rotate60cw() Cell {
	for r := Resolution1; r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.digit(r).rotate60cw())
	}
	return c
}

// rotatePent60ccw rotates the path of a pentagon-rooted cell 60 degrees
// counterclockwise, rotating once more if the leading digit lands on the
// deleted k axis.
func (c Cell) rotatePent60ccw() Cell {
	foundFirst := false
	for r := Resolution1; r <= c.Resolution(); r++ {
		c = c.setDigit(r, c.digit(r).rotate60ccw())
		if !foundFirst && c.digit(r) != DirectionCenter {
			foundFirst = true
			if c.leadingNonZeroDigit() == DirectionK {
				c = c.rotate60ccw()
			}
		}
	}
	return c
}

// String formats the cell as lowercase hexadecimal, the canonical text
// form.
func (c Cell) String() string {
	return strconv.FormatUint(uint64(c), 16)
}

// Format implements fmt.Formatter so the numeric verbs expose the raw
// index value: %x and %X print hexadecimal, %o octal, %b binary and %d
// decimal. %v and %s print the canonical form.
func (c Cell) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X', 'o', 'O', 'b', 'd':
		fmt.Fprintf(f, fmt.FormatString(f, verb), uint64(c))
	case 'v', 's', 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), c.String())
	default:
		fmt.Fprintf(f, "%%!%c(h3.Cell=%s)", verb, c.String())
	}
}

// ParseCell parses the canonical hexadecimal text form of a cell index
// and validates it.
func ParseCell(s string) (Cell, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("h3: parse cell %q: %w", s, err)
	}
	return NewCell(v)
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	parsed, err := ParseCell(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
