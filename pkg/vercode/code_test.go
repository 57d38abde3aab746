package vercode

import (
	"errors"
	"testing"

	"github.com/vpack/vpack/pkg/schema"
)

func TestEncodingMonotonicPerComponent(t *testing.T) {
	f := New(semverSchema(t))

	base, err := f.Create(3, 100, 7)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Bumping a component by one raises the encoding by 2^(sum of
	// narrower components' widths).
	tests := []struct {
		name   string
		values []int64
		step   int64
	}{
		{"patch step is 1", []int64{3, 100, 8}, 1},
		{"minor step is 2^5", []int64{3, 101, 7}, 1 << 5},
		{"major step is 2^24", []int64{4, 100, 7}, 1 << 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bumped, err := f.Create(tt.values...)
			if err != nil {
				t.Fatalf("Create(%v) failed: %v", tt.values, err)
			}
			diff := bumped.EncodedValue() - base.EncodedValue()
			if diff != tt.step {
				t.Errorf("encoding step = %d, want %d", diff, tt.step)
			}
			if bumped.EncodedValue() <= base.EncodedValue() {
				t.Errorf("encoding not strictly increasing: %d <= %d",
					bumped.EncodedValue(), base.EncodedValue())
			}
		})
	}
}

func TestEncodingNoOverlap(t *testing.T) {
	// With every component at max, encoding must fill exactly TotalBits
	// bits: any overlap or gap would change the sum.
	s, err := schema.NewFromWidths(7, 19, 5)
	if err != nil {
		t.Fatalf("NewFromWidths failed: %v", err)
	}
	f := New(s)

	c, err := f.Create(127, 524287, 31)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	want := (int64(1) << 31) - 1
	if got := c.EncodedValue(); got != want {
		t.Errorf("EncodedValue() = %d, want %d", got, want)
	}
}

func TestGet(t *testing.T) {
	f := New(semverSchema(t))
	c, err := f.Create(1, 2, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name      string
		component string
		want      int64
		wantOK    bool
	}{
		{"major", "Major", 1, true},
		{"minor", "Minor", 2, true},
		{"patch", "Patch", 3, true},
		{"unknown name", "Build", 0, false},
		{"case sensitive", "major", 0, false},
		{"empty name", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Get(tt.component)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Get(%q) = (%d, %v), want (%d, %v)",
					tt.component, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetZeroWidthGuard(t *testing.T) {
	// A zero-width component cannot come out of a Factory, but Get guards
	// against placeholder components in hand-built codes anyway.
	c := Code{components: []Component{
		{Name: "Major", Bits: 7, Value: 1},
		{Name: "Padding", Bits: 0, Value: 0},
	}}

	if _, ok := c.Get("Padding"); ok {
		t.Error("Get on zero-width component reported found")
	}
	if v, ok := c.Get("Major"); !ok || v != 1 {
		t.Errorf("Get(Major) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestWith(t *testing.T) {
	f := New(semverSchema(t))
	orig, err := f.Create(1, 2, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bumped, err := orig.With("Minor", 9)
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}

	if v, _ := bumped.Get("Minor"); v != 9 {
		t.Errorf("bumped Minor = %d, want 9", v)
	}
	if v, _ := orig.Get("Minor"); v != 2 {
		t.Errorf("original mutated: Minor = %d, want 2", v)
	}
	if bumped.EncodedValue() == orig.EncodedValue() {
		t.Error("With did not change the encoding")
	}
}

func TestWithErrors(t *testing.T) {
	f := New(semverSchema(t))
	c, err := f.Create(1, 2, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := c.With("Build", 1); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("With(unknown) error = %v, want ErrUnknownComponent", err)
	}
	if _, err := c.With("Patch", 32); !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("With(over max) error = %v, want ErrValueTooLarge", err)
	}
	if _, err := c.With("Patch", -1); !errors.Is(err, ErrValueNegative) {
		t.Errorf("With(negative) error = %v, want ErrValueNegative", err)
	}
}

func TestString(t *testing.T) {
	f := New(semverSchema(t))
	c, err := f.Create(1, 1, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	want := "16777249 (1.1.1)"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestZeroCode(t *testing.T) {
	var c Code
	if c.EncodedValue() != 0 {
		t.Errorf("zero Code EncodedValue() = %d, want 0", c.EncodedValue())
	}
	if c.Len() != 0 {
		t.Errorf("zero Code Len() = %d, want 0", c.Len())
	}
	if _, ok := c.Get("Major"); ok {
		t.Error("zero Code Get() reported found")
	}
}

func TestComponentsImmutable(t *testing.T) {
	f := New(semverSchema(t))
	c, err := f.Create(1, 2, 3)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	out := c.Components()
	out[0].Value = 99

	if v, _ := c.Get("Major"); v != 1 {
		t.Errorf("code mutated through Components() copy: Major = %d", v)
	}
}
