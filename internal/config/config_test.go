package config

import (
	"os"
	"path/filepath"
	"testing"

	"svw.info/puzzlegen/internal/domain"
)

func TestDefaultProfilesAreConsistent(t *testing.T) {
	cfg := Default()
	for _, d := range domain.Difficulties() {
		p := cfg.Profile(d)
		if err := ValidateProfile(p); err != nil {
			t.Fatalf("default profile %s invalid: %v", d, err)
		}
		if p.Name != d.String() {
			t.Fatalf("profile name %q does not match difficulty %q", p.Name, d)
		}
	}
}

func TestLoadProfilesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	doc := `profiles:
  - name: hard
    min_clues: 22
    max_clues: 30
    target_clues: 26
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}
	p := cfg.Profile(domain.Hard)
	if p.MinClues != 22 || p.MaxClues != 30 || p.TargetClues != 26 {
		t.Fatalf("override not applied: %+v", p)
	}
	// unnamed difficulties keep defaults
	if got, want := cfg.Profile(domain.Easy), Default().Profile(domain.Easy); got != want {
		t.Fatalf("easy profile changed unexpectedly: %+v", got)
	}
}

func TestLoadProfilesRejectsFloorViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	doc := `profiles:
  - name: expert
    min_clues: 10
    max_clues: 26
    target_clues: 20
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(path); err == nil {
		t.Fatal("expected error for min_clues below the 17 floor")
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	if _, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
