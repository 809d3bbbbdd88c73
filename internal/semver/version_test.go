package semver

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.2.3", Version{1, 2, 3}, false},
		{"0.0.0", Version{0, 0, 0}, false},
		{"10.20.30", Version{10, 20, 30}, false},
		{"  1.2.3  ", Version{1, 2, 3}, false},
		{"v1.2.3", Version{}, true},
		{"1.2", Version{}, true},
		{"1.2.3.4", Version{}, true},
		{"1.2.3-alpha", Version{}, true},
		{"1.2.3+build", Version{}, true},
		{"a.b.c", Version{}, true},
		{"", Version{}, true},
		{"1..3", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_TooLong(t *testing.T) {
	long := make([]byte, maxVersionLength+1)
	for i := range long {
		long[i] = '1'
	}

	_, err := Parse(string(long))
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("expected ErrInvalidVersion for oversized input, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	versions := []Version{
		{0, 0, 0},
		{1, 2, 3},
		{0, 1, 0},
		{12, 0, 7},
		{100, 200, 300},
	}

	for _, v := range versions {
		t.Run(v.String(), func(t *testing.T) {
			parsed, err := Parse(v.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", v.String(), err)
			}
			if parsed != v {
				t.Errorf("round trip: got %v, want %v", parsed, v)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 2, 3}, Version{1, 2, 3}, 0},
		{Version{1, 2, 3}, Version{1, 2, 4}, -1},
		{Version{1, 2, 4}, Version{1, 2, 3}, 1},
		{Version{1, 3, 0}, Version{1, 2, 9}, 1},
		{Version{2, 0, 0}, Version{1, 9, 9}, 1},
		{Version{0, 9, 9}, Version{1, 0, 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"_vs_"+tt.b.String(), func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		kind    Kind
		want    Version
		wantErr bool
	}{
		{"major resets minor and patch", Version{1, 2, 3}, KindMajor, Version{2, 0, 0}, false},
		{"minor resets patch", Version{1, 2, 3}, KindMinor, Version{1, 3, 0}, false},
		{"patch increments", Version{1, 2, 3}, KindPatch, Version{1, 2, 4}, false},
		{"major from zero", Version{0, 0, 0}, KindMajor, Version{1, 0, 0}, false},
		{"unknown kind", Version{1, 2, 3}, Kind("release"), Version{}, true},
		{"empty kind", Version{1, 2, 3}, Kind(""), Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bump(tt.version, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Bump(%v, %q) expected error", tt.version, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Bump(%v, %q) unexpected error: %v", tt.version, tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("Bump(%v, %q) = %v, want %v", tt.version, tt.kind, got, tt.want)
			}
		})
	}
}

func TestBump_DoesNotMutate(t *testing.T) {
	original := Version{1, 2, 3}

	if _, err := Bump(original, KindMajor); err != nil {
		t.Fatal(err)
	}
	if original != (Version{1, 2, 3}) {
		t.Errorf("Bump mutated its input: %v", original)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"major", "minor", "patch"} {
		k, err := ParseKind(s)
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", s, err)
		}
		if k.String() != s {
			t.Errorf("ParseKind(%q) = %q", s, k)
		}
	}

	for _, s := range []string{"", "MAJOR", "release", "pre"} {
		if _, err := ParseKind(s); err == nil {
			t.Errorf("ParseKind(%q) expected error", s)
		}
	}
}
