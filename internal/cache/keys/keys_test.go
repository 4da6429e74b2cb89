package keys

import (
	"regexp"
	"testing"
	"unicode"
)

func TestDeterminism_SameInputsSameKey(t *testing.T) {
	body := []byte(`{"type":"polygon","rings":[[[59,17],[59,19],[60,18]]]}`)
	k1 := Cover("polygon", body, 8)
	k2 := Cover("polygon", body, 8)
	if k1 != k2 {
		t.Fatalf("determinism failed:\n k1=%s\n k2=%s", k1, k2)
	}
}

func TestDifference_ResolutionAndBodyMatter(t *testing.T) {
	body := []byte(`{"type":"point","coord":[59.3,18.07]}`)
	other := []byte(`{"type":"point","coord":[59.3,18.08]}`)
	if Cover("point", body, 8) == Cover("point", body, 9) {
		t.Fatal("different resolutions must produce different keys")
	}
	if Cover("point", body, 8) == Cover("point", other, 8) {
		t.Fatal("different geometries must produce different keys")
	}
}

func TestSanitize_KindIsNormalized(t *testing.T) {
	k := Cover("  Multi Polygon/雪  ", []byte("x"), 5)
	for _, r := range k {
		if r > unicode.MaxASCII {
			t.Fatalf("non-ASCII rune leaked into key: %q in %s", r, k)
		}
	}
	if !regexp.MustCompile(`^cover:[a-z0-9_\-]+:5:[0-9a-f]{16}$`).MatchString(k) {
		t.Fatalf("unexpected key shape: %s", k)
	}
}

func TestEmptyKind(t *testing.T) {
	k := Cover("", []byte("x"), 3)
	if !regexp.MustCompile(`^cover:unknown:3:[0-9a-f]{16}$`).MatchString(k) {
		t.Fatalf("unexpected key shape: %s", k)
	}
}
