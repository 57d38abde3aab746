package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
		wantErr    error
	}{
		{
			name: "single component",
			components: []Component{
				{Name: "Major", Bits: 7},
			},
		},
		{
			name: "three components",
			components: []Component{
				{Name: "Major", Bits: 7},
				{Name: "Minor", Bits: 19},
				{Name: "Patch", Bits: 5},
			},
		},
		{
			name: "exactly at the bit budget",
			components: []Component{
				{Name: "Major", Bits: 15},
				{Name: "Minor", Bits: 16},
			},
		},
		{
			name:       "empty schema",
			components: nil,
			wantErr:    ErrEmptySchema,
		},
		{
			name: "zero width",
			components: []Component{
				{Name: "Major", Bits: 7},
				{Name: "Minor", Bits: 0},
			},
			wantErr: ErrNonPositiveWidth,
		},
		{
			name: "negative width",
			components: []Component{
				{Name: "Major", Bits: -3},
			},
			wantErr: ErrNonPositiveWidth,
		},
		{
			name: "blank name",
			components: []Component{
				{Name: "  ", Bits: 7},
			},
			wantErr: ErrBlankName,
		},
		{
			name: "duplicate names",
			components: []Component{
				{Name: "Major", Bits: 7},
				{Name: "Major", Bits: 5},
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "total of 32 bits",
			components: []Component{
				{Name: "Major", Bits: 16},
				{Name: "Minor", Bits: 16},
			},
			wantErr: ErrBitBudgetExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.components...)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("New(%v) = %v, want error %v", tt.components, s, tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New(%v) error = %v, want wrapping %v", tt.components, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v) unexpected error: %v", tt.components, err)
			}
			if s.Len() != len(tt.components) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.components))
			}
		})
	}
}

func TestNewErrorMessages(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
		wantSubstr string
	}{
		{
			name:       "empty schema message",
			components: nil,
			wantSubstr: "schema must not be empty",
		},
		{
			name: "non-positive width names the component",
			components: []Component{
				{Name: "Minor", Bits: 0},
			},
			wantSubstr: "component sizes must be positive, but Minor is zero or negative",
		},
		{
			name: "bit budget reports the offending total",
			components: []Component{
				{Name: "Major", Bits: 20},
				{Name: "Minor", Bits: 15},
			},
			wantSubstr: "31 bits, but total is 35",
		},
		{
			name: "duplicate names the offender",
			components: []Component{
				{Name: "Major", Bits: 4},
				{Name: "Major", Bits: 4},
			},
			wantSubstr: `duplicate component names: "Major"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.components...)
			if err == nil {
				t.Fatal("New() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestNewFromWidths(t *testing.T) {
	s, err := NewFromWidths(7, 19, 5)
	if err != nil {
		t.Fatalf("NewFromWidths failed: %v", err)
	}

	want := []Component{
		{Name: "Component 0", Bits: 7},
		{Name: "Component 1", Bits: 19},
		{Name: "Component 2", Bits: 5},
	}
	got := s.Components()
	if len(got) != len(want) {
		t.Fatalf("Components() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Components()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComponentMaxValue(t *testing.T) {
	tests := []struct {
		bits int
		want int64
	}{
		{1, 1},
		{5, 31},
		{7, 127},
		{19, 524287},
		{31, 2147483647},
	}

	for _, tt := range tests {
		c := Component{Name: "c", Bits: tt.bits}
		if got := c.MaxValue(); got != tt.want {
			t.Errorf("Component{Bits: %d}.MaxValue() = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestSchemaImmutable(t *testing.T) {
	in := []Component{
		{Name: "Major", Bits: 7},
		{Name: "Minor", Bits: 19},
	}
	s, err := New(in...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Mutating the input or the returned copy must not affect the schema.
	in[0].Bits = 99
	out := s.Components()
	out[1].Name = "Hijacked"

	if s.At(0).Bits != 7 {
		t.Errorf("schema mutated through input slice: %v", s.At(0))
	}
	if s.At(1).Name != "Minor" {
		t.Errorf("schema mutated through Components() copy: %v", s.At(1))
	}
}

func TestSchemaString(t *testing.T) {
	s := MustNew(
		Component{Name: "Major", Bits: 7},
		Component{Name: "Minor", Bits: 19},
		Component{Name: "Patch", Bits: 5},
	)
	want := "Major(7).Minor(19).Patch(5)"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew with empty schema did not panic")
		}
	}()
	MustNew()
}

func TestTotalBits(t *testing.T) {
	s := MustNew(
		Component{Name: "Major", Bits: 7},
		Component{Name: "Minor", Bits: 19},
		Component{Name: "Patch", Bits: 5},
	)
	if got := s.TotalBits(); got != 31 {
		t.Errorf("TotalBits() = %d, want 31", got)
	}
}
