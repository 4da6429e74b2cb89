package h3

import (
	"math"
	"testing"
)

func TestResolutionSuccPred(t *testing.T) {
	if r, ok := Resolution0.Succ(); !ok || r != Resolution1 {
		t.Errorf("Succ(0) = %d, %v", r, ok)
	}
	if _, ok := MaxResolution.Succ(); ok {
		t.Error("Succ(15) exists")
	}
	if r, ok := Resolution10.Pred(); !ok || r != Resolution9 {
		t.Errorf("Pred(10) = %d, %v", r, ok)
	}
	if _, ok := Resolution0.Pred(); ok {
		t.Error("Pred(0) exists")
	}
}

func TestResolutionRange(t *testing.T) {
	var got []Resolution
	for r := range Range(Resolution3, Resolution6) {
		got = append(got, r)
	}
	want := []Resolution{Resolution3, Resolution4, Resolution5, Resolution6}
	if len(got) != len(want) {
		t.Fatalf("range = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range = %v", got)
		}
	}
}

func TestCellCount(t *testing.T) {
	cases := []struct {
		res  Resolution
		want uint64
	}{
		{Resolution0, 122},
		{Resolution1, 842},
		{Resolution2, 5882},
		{Resolution15, 569707381193162},
	}
	for _, tc := range cases {
		if got := tc.res.CellCount(); got != tc.want {
			t.Errorf("CellCount(%d) = %d, want %d", tc.res, got, tc.want)
		}
	}
}

func TestAreaUnits(t *testing.T) {
	for r := Resolution0; r <= MaxResolution; r++ {
		if got := r.AreaM2(); math.Abs(got/r.AreaKm2()-1e6) > 1 {
			t.Errorf("AreaM2(%d) = %v", r, got)
		}
		wantRads := r.AreaKm2() / (earthRadiusKm * earthRadiusKm)
		if got := r.AreaRads2(); math.Abs(got/wantRads-1) > 1e-12 {
			t.Errorf("AreaRads2(%d) = %v, want %v", r, got, wantRads)
		}
		if r > Resolution0 {
			prev := r - 1
			ratio := prev.AreaKm2() / r.AreaKm2()
			if ratio < 6.5 || ratio > 7.5 {
				t.Errorf("area ratio %d -> %d = %v", prev, r, ratio)
			}
		}
	}
}

func TestEdgeLengths(t *testing.T) {
	for r := Resolution0; r <= MaxResolution; r++ {
		km := r.EdgeLengthKm()
		if km <= 0 {
			t.Fatalf("EdgeLengthKm(%d) = %v", r, km)
		}
		if got := r.EdgeLengthM(); math.Abs(got/km-1000) > 1e-6 {
			t.Errorf("EdgeLengthM(%d) = %v", r, got)
		}
	}
	if MaxResolution.EdgeLengthM() > 1 {
		t.Errorf("finest edge length %v m", MaxResolution.EdgeLengthM())
	}
}

func TestNewResolution(t *testing.T) {
	if _, err := NewResolution(9); err != nil {
		t.Fatalf("NewResolution(9): %v", err)
	}
	for _, v := range []int{-1, 16} {
		if _, err := NewResolution(v); err == nil {
			t.Errorf("NewResolution(%d) accepted", v)
		}
	}
}
