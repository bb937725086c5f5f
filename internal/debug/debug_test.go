package debug

import (
	"reflect"
	"strings"
	"testing"

	"physics-sim/internal/config"
)

func TestText(t *testing.T) {
	stats := Stats{Bodies: 3, Collisions: 12, Energy: 1234.4, Mode: "radial", Paused: true}

	tests := []struct {
		name string
		cfg  config.Debug
		want []string
	}{
		{"off", config.Debug{}, nil},
		{"fps only", config.Debug{ShowFPS: true}, []string{"FPS: 60"}},
		{"stats", config.Debug{ShowFPS: true, ShowStats: true}, []string{
			"FPS: 60", "Bodies: 3", "Collisions: 12", "Energy: 1234", "Mode: radial (paused)",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.cfg).Text(60, stats)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTextMemAlloc(t *testing.T) {
	d := New(config.Debug{ShowMem: true})
	if !d.ShowMemAlloc {
		t.Fatal("Expected show_mem to enable the memory line")
	}
	got := d.Text(0, Stats{})
	if len(got) != 1 || !strings.HasPrefix(got[0], "Mem: ") || !strings.HasSuffix(got[0], " MiB") {
		t.Errorf("Unexpected memory line %v", got)
	}
}
