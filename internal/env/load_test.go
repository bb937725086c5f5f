package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nPHYSICS_SIM_GRAVITY=-9.8\nexport PHYSICS_SIM_MODE=\"radial\"\nPHYSICS_SIM_TITLE='Balls'\nbroken line\nPHYSICS_SIM_KEEP=file\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PHYSICS_SIM_KEEP", "process")
	for _, k := range []string{"PHYSICS_SIM_GRAVITY", "PHYSICS_SIM_MODE", "PHYSICS_SIM_TITLE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := map[string]string{
		"PHYSICS_SIM_GRAVITY": "-9.8",
		"PHYSICS_SIM_MODE":    "radial",
		"PHYSICS_SIM_TITLE":   "Balls",
		"PHYSICS_SIM_KEEP":    "process",
	}
	for k, want := range tests {
		if got := os.Getenv(k); got != want {
			t.Errorf("%s: expected %q, got %q", k, want, got)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("Expected missing file to be ignored, got %v", err)
	}
}

func TestTypedLookups(t *testing.T) {
	t.Setenv(Prefix+"G", " -400 ")
	t.Setenv(Prefix+"BAD", "fast")
	t.Setenv(Prefix+"WALLS", "true")
	t.Setenv(Prefix+"BLANK", "  ")

	if v, ok, err := Float("G"); !ok || err != nil || v != -400 {
		t.Errorf("Expected -400, got %v ok=%v err=%v", v, ok, err)
	}
	if _, ok, err := Float("BAD"); !ok || err == nil {
		t.Errorf("Expected parse error for malformed value, got ok=%v err=%v", ok, err)
	}
	if _, ok, _ := Float("MISSING"); ok {
		t.Error("Expected missing variable to report ok=false")
	}
	if v, ok, err := Bool("WALLS"); !ok || err != nil || !v {
		t.Errorf("Expected true, got %v ok=%v err=%v", v, ok, err)
	}
	if _, ok := String("BLANK"); ok {
		t.Error("Expected blank variable to report ok=false")
	}
}
