package h3

import (
	"errors"
	"fmt"
	"testing"
)

func mustCell(t *testing.T, s string) Cell {
	t.Helper()
	c, err := ParseCell(s)
	if err != nil {
		t.Fatalf("ParseCell(%q): %v", s, err)
	}
	return c
}

func TestCellFormat(t *testing.T) {
	c := mustCell(t, "8a1fb46622dffff")

	cases := []struct {
		format string
		want   string
	}{
		{"%x", "8a1fb46622dffff"},
		{"%X", "8A1FB46622DFFFF"},
		{"%o", "42417664314213377777"},
		{"%b", "100010100001111110110100011001100010001011011111111111111111"},
		{"%v", "8a1fb46622dffff"},
		{"%s", "8a1fb46622dffff"},
	}
	for _, tc := range cases {
		if got := fmt.Sprintf(tc.format, c); got != tc.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
	if c.String() != "8a1fb46622dffff" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestParseCell(t *testing.T) {
	c, err := ParseCell("8a1fb46622dffff")
	if err != nil {
		t.Fatalf("ParseCell: %v", err)
	}
	if uint64(c) != 0x8a1fb46622dffff {
		t.Fatalf("ParseCell = %#x", uint64(c))
	}

	if _, err := ParseCell("no bueno"); err == nil {
		t.Fatal("ParseCell accepted garbage")
	}
}

func TestCellTextRoundtrip(t *testing.T) {
	orig := mustCell(t, "8a1fb46622dffff")
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var back Cell
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != orig {
		t.Fatalf("roundtrip: got %s, want %s", back, orig)
	}
}

func TestNewCellRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		value uint64
	}{
		{"high bit set", 0x8a1fb46622dffff | 1<<63},
		{"wrong mode", 0x2a1fb46622dffff},
		{"reserved bits", 0x8a1fb46622dffff | 1<<56},
		{"base cell out of range", 0x80f5fffffffffff},
		{"used digit past resolution", 0x8a1fb46622d0fff},
		{"unused digit before resolution", 0x8a1fb46622fffff},
		{"k digit under pentagon", 0x81087ffffffffff},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCell(tc.value); err == nil {
				t.Fatalf("NewCell(%#x) accepted", tc.value)
			}
			var invalid *InvalidCellError
			_, err := NewCell(tc.value)
			if !errors.As(err, &invalid) {
				t.Fatalf("NewCell(%#x) error %v, want InvalidCellError", tc.value, err)
			}
		})
	}
}

func TestCellAccessors(t *testing.T) {
	c := mustCell(t, "8a1fb46622dffff")
	if got := c.Resolution(); got != Resolution10 {
		t.Errorf("Resolution = %d", got)
	}
	if got := c.Base(); got != 15 {
		t.Errorf("Base = %d", got)
	}
	if c.IsPentagon() {
		t.Error("IsPentagon = true for a hexagon")
	}

	pent := mustCell(t, "81083ffffffffff")
	if !pent.IsPentagon() {
		t.Error("IsPentagon = false for a res 1 pentagon")
	}
	if got := pent.Base(); got != 4 || !got.IsPentagon() {
		t.Errorf("pentagon Base = %d", got)
	}
}

func parseOctal(t *testing.T, s string) Cell {
	t.Helper()
	var v uint64
	if _, err := fmt.Sscanf(s, "%o", &v); err != nil {
		t.Fatalf("octal %q: %v", s, err)
	}
	c, err := NewCell(v)
	if err != nil {
		t.Fatalf("octal %q: %v", s, err)
	}
	return c
}

func TestCellSucc(t *testing.T) {
	cases := []struct {
		name string
		cell string
		want string
	}{
		{"increment", "42417664314213377777", "42417664314213477777"},
		{"single carry", "42417664314213677777", "42417664314214077777"},
		{"cascade", "42417664314666677777", "42417664315000077777"},
		{"base cell cascade", "42466666666666677777", "42467000000000077777"},
		{"pentagon skips k", "42404000000000077777", "42404000000000277777"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := parseOctal(t, tc.cell)
			want := parseOctal(t, tc.want)
			got, ok := c.Succ()
			if !ok {
				t.Fatalf("Succ(%o) = none", uint64(c))
			}
			if got != want {
				t.Fatalf("Succ(%o) = %o, want %o", uint64(c), uint64(got), uint64(want))
			}
			back, ok := got.Pred()
			if !ok || back != c {
				t.Fatalf("Pred(Succ(%o)) = %o", uint64(c), uint64(back))
			}
		})
	}

	if _, ok := parseOctal(t, "42571666666666677777").Succ(); ok {
		t.Error("Succ past the last cell")
	}

	// hop across base cells at resolution 0
	c := mustCell(t, "8009fffffffffff")
	next, ok := c.Succ()
	if !ok || next != mustCell(t, "800bfffffffffff") {
		t.Fatalf("Succ(%s) = %s", c, next)
	}
	back, ok := next.Pred()
	if !ok || back != c {
		t.Fatalf("Pred(%s) = %s", next, back)
	}
}

func TestFirstLastCell(t *testing.T) {
	for r := Resolution0; r <= MaxResolution; r++ {
		first := FirstCell(r)
		if !first.IsValid() {
			t.Fatalf("FirstCell(%d) invalid", r)
		}
		if first.Resolution() != r || first.Base() != 0 {
			t.Fatalf("FirstCell(%d) = %s", r, first)
		}
		if _, ok := first.Pred(); ok {
			t.Errorf("Pred(FirstCell(%d)) exists", r)
		}

		last := LastCell(r)
		if !last.IsValid() {
			t.Fatalf("LastCell(%d) invalid", r)
		}
		if last.Resolution() != r || last.Base() != MaxBaseCell {
			t.Fatalf("LastCell(%d) = %s", r, last)
		}
		if _, ok := last.Succ(); ok {
			t.Errorf("Succ(LastCell(%d)) exists", r)
		}
	}
	if FirstCell(Resolution0) != mustCell(t, "8001fffffffffff") {
		t.Errorf("FirstCell(0) = %s", FirstCell(Resolution0))
	}
}

// Walking Succ from the first cell must enumerate every cell at the
// resolution exactly once.
func TestSuccEnumeratesResolution(t *testing.T) {
	for _, r := range []Resolution{Resolution0, Resolution1, Resolution2} {
		count := uint64(1)
		c := FirstCell(r)
		for {
			next, ok := c.Succ()
			if !ok {
				break
			}
			if !next.IsValid() {
				t.Fatalf("res %d: Succ(%s) = %s invalid", r, c, next)
			}
			c = next
			count++
		}
		if c != LastCell(r) {
			t.Fatalf("res %d: walk ended at %s, want %s", r, c, LastCell(r))
		}
		if want := r.CellCount(); count != want {
			t.Fatalf("res %d: enumerated %d cells, want %d", r, count, want)
		}
	}
}

func TestCellParent(t *testing.T) {
	c := mustCell(t, "8a1fb46622dffff")

	p, ok := c.Parent(Resolution8)
	if !ok {
		t.Fatal("Parent(8) = none")
	}
	if p.Resolution() != Resolution8 || p.Base() != c.Base() {
		t.Fatalf("Parent(8) = %s", p)
	}
	if !p.IsValid() {
		t.Fatalf("Parent(8) = %s invalid", p)
	}

	if self, ok := c.Parent(Resolution10); !ok || self != c {
		t.Errorf("Parent at own resolution = %s", self)
	}
	if _, ok := c.Parent(Resolution11); ok {
		t.Error("Parent finer than the cell")
	}
}

func TestChildPosition(t *testing.T) {
	c := mustCell(t, "8a1fb46622dffff")
	pos, ok := c.ChildPosition(Resolution8)
	if !ok {
		t.Fatal("ChildPosition(8) = none")
	}
	if pos != 24 {
		t.Fatalf("ChildPosition(8) = %d, want 24", pos)
	}
	if _, ok := c.ChildPosition(Resolution11); ok {
		t.Error("ChildPosition finer than the cell")
	}
}

func TestChildAtRoundtrip(t *testing.T) {
	cells := []string{
		"8a1fb46622dffff", // hexagon path
		"8fc3b0804200001", // res 15
		"8a0800000007fff", // descends from a pentagon
	}
	for _, s := range cells {
		c := mustCell(t, s)
		res := c.Resolution()
		for r := Resolution0; r <= res; r++ {
			pos, ok := c.ChildPosition(r)
			if !ok {
				t.Fatalf("%s: ChildPosition(%d) = none", s, r)
			}
			parent, _ := c.Parent(r)
			back, ok := parent.ChildAt(pos, res)
			if !ok {
				t.Fatalf("%s: ChildAt(%d, %d) = none", s, pos, res)
			}
			if back != c {
				t.Fatalf("%s: ChildAt(ChildPosition(%d)) = %s", s, r, back)
			}
		}
	}
}

func TestChildrenCount(t *testing.T) {
	hex := mustCell(t, "8a1fb46622dffff")
	if n, _ := hex.ChildrenCount(Resolution12); n != 49 {
		t.Errorf("hexagon ChildrenCount(+2) = %d, want 49", n)
	}

	pent := mustCell(t, "8009fffffffffff")
	if n, _ := pent.ChildrenCount(Resolution1); n != 6 {
		t.Errorf("pentagon ChildrenCount(+1) = %d, want 6", n)
	}
	if n, _ := pent.ChildrenCount(Resolution2); n != 41 {
		t.Errorf("pentagon ChildrenCount(+2) = %d, want 41", n)
	}
	if _, ok := hex.ChildrenCount(Resolution9); ok {
		t.Error("ChildrenCount accepted a coarser resolution")
	}
}

func TestChildren(t *testing.T) {
	for _, s := range []string{"8009fffffffffff", "8029fffffffffff"} {
		c := mustCell(t, s)
		for _, r := range []Resolution{Resolution1, Resolution2} {
			want, _ := c.ChildrenCount(r)
			seen := make(map[Cell]struct{})
			prev := Cell(0)
			for child := range c.Children(r) {
				if !child.IsValid() {
					t.Fatalf("%s: invalid child %s", s, child)
				}
				if prev != 0 && child <= prev {
					t.Fatalf("%s: children out of order", s)
				}
				if p, _ := child.Parent(c.Resolution()); p != c {
					t.Fatalf("%s: child %s has parent %s", s, child, p)
				}
				seen[child] = struct{}{}
				prev = child
			}
			if uint64(len(seen)) != want {
				t.Fatalf("%s: %d children at res %d, want %d", s, len(seen), r, want)
			}
		}
	}
}

func TestCenterChild(t *testing.T) {
	c := mustCell(t, "8009fffffffffff")
	child, ok := c.CenterChild(Resolution3)
	if !ok {
		t.Fatal("CenterChild = none")
	}
	if !child.IsPentagon() {
		t.Error("center child of a pentagon is not a pentagon")
	}
	if p, _ := child.Parent(Resolution0); p != c {
		t.Errorf("center child parent = %s", p)
	}
}
