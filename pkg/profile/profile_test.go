package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfileIsValid(t *testing.T) {
	p := Default()
	report := Validate(p)
	if !report.Valid {
		t.Fatalf("default profile invalid: %+v", report.Errors)
	}
	if p.Seed != DefaultSeed {
		t.Errorf("default seed %d, want %d", p.Seed, DefaultSeed)
	}
	if len(p.Layers) != 5 {
		t.Errorf("default profile has %d layers, want 5", len(p.Layers))
	}
}

func TestLayerSpecsResolvePalette(t *testing.T) {
	p := Default()
	specs := p.LayerSpecs()
	if len(specs) != len(p.Layers) {
		t.Fatalf("expected %d specs, got %d", len(p.Layers), len(specs))
	}

	for i, s := range specs {
		if s.Name != p.Layers[i].Name {
			t.Errorf("spec %d: name %q, want %q", i, s.Name, p.Layers[i].Name)
		}
		if len(s.Palette) != len(p.Palette) {
			t.Errorf("spec %s: %d palette choices, want %d", s.Name, len(s.Palette), len(p.Palette))
		}
	}

	// The dust layer weights the first three palette entries only.
	dust := specs[0]
	for _, c := range dust.Palette[3:] {
		if c.Weight != 0 {
			t.Errorf("dust palette index %d should have zero weight, got %v", c.Index, c.Weight)
		}
	}
}

func TestLayerSpecsUniformWhenUnweighted(t *testing.T) {
	p := Default()
	p.Layers[0].ColorWeights = nil
	specs := p.LayerSpecs()
	for _, c := range specs[0].Palette {
		if c.Weight != 1 {
			t.Errorf("unweighted layer: index %d weight %v, want 1", c.Index, c.Weight)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFile)

	content := `version: "0.1.0"
seed: 99
width: 640
height: 480
palette: ["#FFFFFF", "#AFC9FF"]
layers:
  - name: stars
    kind: star
    density_per_kpx: 1.5
    min_distance: 10
    center_bias: 0.25
    size_min: 1
    size_max: 2
    alpha_min: 0.5
    alpha_max: 0.9
    color_weights: [2, 1]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Seed != 99 || p.Width != 640 || p.Height != 480 {
		t.Errorf("unexpected header: seed=%d size=%dx%d", p.Seed, p.Width, p.Height)
	}
	if len(p.Layers) != 1 || p.Layers[0].Name != "stars" {
		t.Fatalf("layers not parsed: %+v", p.Layers)
	}
	if report := Validate(p); !report.Valid {
		t.Errorf("loaded profile invalid: %+v", report.Errors)
	}
}

func TestLoadProjectFallsBackToDefault(t *testing.T) {
	p, err := LoadProject(t.TempDir())
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	if p.Seed != DefaultSeed {
		t.Errorf("expected default profile, got seed %d", p.Seed)
	}
}

func TestValidateCatchesBadFields(t *testing.T) {
	p := Default()
	p.Palette[0] = "white"
	p.Layers[0].CenterBias = 1.4
	p.Layers[1].MinDistance = -3
	p.Layers[2].AlphaMax = 1.5
	p.Layers[3].Name = p.Layers[4].Name

	report := Validate(p)
	if report.Valid {
		t.Fatal("invalid profile passed validation")
	}
	if len(report.Errors) < 5 {
		t.Errorf("expected at least 5 errors, got %d: %+v", len(report.Errors), report.Errors)
	}
}
