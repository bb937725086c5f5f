package physics

import (
	"errors"
	"testing"
)

func TestParseGravityMode(t *testing.T) {
	tests := []struct {
		in      string
		want    GravityMode
		wantErr bool
	}{
		{"uniform", Uniform, false},
		{"Linear", Uniform, false},
		{" RADIAL ", Radial, false},
		{"orbital", Uniform, true},
		{"", Uniform, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGravityMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("Expected ErrUnknownMode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGravityModeText(t *testing.T) {
	var m GravityMode
	if err := m.UnmarshalText([]byte("radial")); err != nil || m != Radial {
		t.Fatalf("Expected radial, got %v (err %v)", m, err)
	}
	text, err := m.MarshalText()
	if err != nil || string(text) != "radial" {
		t.Errorf("Expected \"radial\", got %q (err %v)", text, err)
	}
	if _, err := GravityMode(9).MarshalText(); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode for out-of-range mode, got %v", err)
	}
	if s := GravityMode(9).String(); s != "GravityMode(9)" {
		t.Errorf("Expected GravityMode(9), got %q", s)
	}
}
