package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(12, 20); err != nil {
		t.Fatalf("Expected default fonts to load, got %v", err)
	}
	if HUD.Get().Metrics().Height >= Toast.Get().Metrics().Height {
		t.Errorf("Expected the toast face to be taller than the HUD face")
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Errorf("Expected an error for invalid font data")
	}
}
