package vercode

import (
	"testing"

	"github.com/vpack/vpack/pkg/schema"
)

func mustCreate(t *testing.T, widths []int, values ...int64) Code {
	t.Helper()
	s, err := schema.NewFromWidths(widths...)
	if err != nil {
		t.Fatalf("NewFromWidths(%v) failed: %v", widths, err)
	}
	c, err := New(s).Create(values...)
	if err != nil {
		t.Fatalf("Create(%v) failed: %v", values, err)
	}
	return c
}

func TestCompareSameShape(t *testing.T) {
	tests := []struct {
		name string
		a    []int64
		b    []int64
		want int
	}{
		{"equal", []int64{1, 2, 3}, []int64{1, 2, 3}, 0},
		{"minor decides before patch", []int64{1, 2, 3}, []int64{1, 1, 3}, 1},
		{"major decides first", []int64{1, 9, 9}, []int64{2, 0, 0}, -1},
		{"patch decides last", []int64{1, 2, 3}, []int64{1, 2, 4}, -1},
		{"greater patch irrelevant when minor greater", []int64{1, 2, 3}, []int64{1, 1, 31}, 1},
	}

	widths := []int{5, 5, 5}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCreate(t, widths, tt.a...)
			b := mustCreate(t, widths, tt.b...)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareCrossSchemaZeroPadding(t *testing.T) {
	tests := []struct {
		name    string
		aWidths []int
		a       []int64
		bWidths []int
		b       []int64
		want    int
	}{
		{
			name:    "missing trailing component counts as zero",
			aWidths: []int{3}, a: []int64{5},
			bWidths: []int{3, 1}, b: []int64{5, 0},
			want: 0,
		},
		{
			name:    "trailing nonzero breaks the tie",
			aWidths: []int{3}, a: []int64{5},
			bWidths: []int{3, 1}, b: []int64{5, 1},
			want: -1,
		},
		{
			name:    "positional not width-based",
			aWidths: []int{2, 2}, a: []int64{1, 3},
			bWidths: []int{10, 10}, b: []int64{1, 2},
			want: 1,
		},
		{
			name:    "longer all-zero tail still equal",
			aWidths: []int{4}, a: []int64{9},
			bWidths: []int{4, 4, 4}, b: []int64{9, 0, 0},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustCreate(t, tt.aWidths, tt.a...)
			b := mustCreate(t, tt.bWidths, tt.b...)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCrossSchemaEqualWithDifferentEncodings(t *testing.T) {
	// 5 in a 3-bit lone component encodes to 5; (5, 0) with a 1-bit
	// trailing component encodes to 10. The codes still compare equal.
	a := mustCreate(t, []int{3}, 5)
	b := mustCreate(t, []int{3, 1}, 5, 0)

	if a.EncodedValue() == b.EncodedValue() {
		t.Fatalf("test premise broken: encodings both %d", a.EncodedValue())
	}
	if !a.Equal(b) {
		t.Errorf("Equal = false for zero-padded equivalents %v and %v", a, b)
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare = %d, want 0", a.Compare(b))
	}
}

func TestEqualConsistency(t *testing.T) {
	a := mustCreate(t, []int{5, 5, 5}, 1, 2, 3)
	b := mustCreate(t, []int{5, 5, 5}, 1, 2, 3)
	c := mustCreate(t, []int{6, 6, 6}, 1, 2, 3)

	// reflexive
	if !a.Equal(a) {
		t.Error("Equal not reflexive")
	}
	// symmetric
	if a.Equal(b) != b.Equal(a) {
		t.Error("Equal not symmetric")
	}
	// transitive
	if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
		t.Error("Equal not transitive")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Code
		b    Code
	}{
		{
			name: "same shape same values",
			a:    mustCreate(t, []int{5, 5, 5}, 1, 2, 3),
			b:    mustCreate(t, []int{5, 5, 5}, 1, 2, 3),
		},
		{
			name: "different widths same values",
			a:    mustCreate(t, []int{5, 5, 5}, 1, 2, 3),
			b:    mustCreate(t, []int{7, 19, 5}, 1, 2, 3),
		},
		{
			name: "zero-padded equivalents",
			a:    mustCreate(t, []int{3}, 5),
			b:    mustCreate(t, []int{3, 1, 1}, 5, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.a.Equal(tt.b) {
				t.Fatalf("test premise broken: codes not equal")
			}
			if tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal codes hash differently: %d != %d", tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHashDiffers(t *testing.T) {
	// Not guaranteed in general, but these simple cases must not collide
	// if the value sequence is actually feeding the hash.
	a := mustCreate(t, []int{5, 5, 5}, 1, 2, 3)
	b := mustCreate(t, []int{5, 5, 5}, 3, 2, 1)
	if a.Hash() == b.Hash() {
		t.Errorf("distinct codes %v and %v share hash %d", a, b, a.Hash())
	}
}

func TestCompareAgainstZeroCode(t *testing.T) {
	var zero Code
	nonzero := mustCreate(t, []int{5}, 1)
	allZero := mustCreate(t, []int{5, 5}, 0, 0)

	if zero.Compare(nonzero) != -1 {
		t.Errorf("zero vs nonzero = %d, want -1", zero.Compare(nonzero))
	}
	if !zero.Equal(allZero) {
		t.Error("zero Code not equal to explicit all-zero code")
	}
}
