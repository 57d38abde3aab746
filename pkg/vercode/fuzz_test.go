package vercode

import (
	"testing"

	"github.com/vpack/vpack/pkg/schema"
)

// FuzzCreate performs fuzz testing on Factory.Create to find edge cases
func FuzzCreate(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add(7, 19, 5, int64(1), int64(1), int64(1))
	f.Add(7, 19, 5, int64(127), int64(524287), int64(31))
	f.Add(7, 19, 5, int64(0), int64(0), int64(0))
	f.Add(1, 1, 1, int64(1), int64(0), int64(1))
	f.Add(5, 5, 5, int64(-1), int64(0), int64(0))
	f.Add(5, 5, 5, int64(32), int64(0), int64(0))
	f.Add(0, 19, 5, int64(0), int64(0), int64(0))
	f.Add(31, 1, 1, int64(1), int64(1), int64(1))
	f.Add(10, 10, 11, int64(1023), int64(1023), int64(2047))

	f.Fuzz(func(t *testing.T, w1, w2, w3 int, v1, v2, v3 int64) {
		s, err := schema.NewFromWidths(w1, w2, w3)
		if err != nil {
			// Invalid schemas are rejected up front; nothing further to check.
			return
		}

		c, err := New(s).Create(v1, v2, v3)
		if err != nil {
			return
		}

		// Encoding must stay within the schema budget and never go negative.
		if c.EncodedValue() < 0 {
			t.Errorf("Create(%d,%d,%d) encoded to negative %d", v1, v2, v3, c.EncodedValue())
		}
		if maxEncoded := (int64(1) << s.TotalBits()) - 1; c.EncodedValue() > maxEncoded {
			t.Errorf("Create(%d,%d,%d) encoded to %d, beyond %d-bit budget",
				v1, v2, v3, c.EncodedValue(), s.TotalBits())
		}

		// Round-trip: every component must come back out by name.
		values := []int64{v1, v2, v3}
		for i, comp := range s.Components() {
			got, ok := c.Get(comp.Name)
			if !ok {
				t.Errorf("Get(%q) not found after Create", comp.Name)
				continue
			}
			if got != values[i] {
				t.Errorf("Get(%q) = %d, want %d", comp.Name, got, values[i])
			}
		}

		// Comparison invariants must hold against the code itself.
		if c.Compare(c) != 0 {
			t.Errorf("Compare(self) = %d, want 0", c.Compare(c))
		}
		if !c.Equal(c) {
			t.Error("Equal(self) = false")
		}
		if c.Hash() != c.Hash() {
			t.Error("Hash not stable")
		}

		// String should not panic.
		_ = c.String()
	})
}
