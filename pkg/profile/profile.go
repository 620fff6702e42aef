package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the profile filename looked up in a project directory.
const ProjectFile = "starfield.yaml"

// DefaultSeed is the documented seed used when none is configured.
const DefaultSeed int32 = 1337

// Load reads a generation profile from a YAML file. Omitted fields fall
// back to the built-in defaults where Default documents them.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile YAML: %w", err)
	}

	return &p, nil
}

// LoadProject loads the profile from a project directory, looking for
// starfield.yaml. A missing file yields the built-in default profile.
func LoadProject(projectDir string) (*Profile, error) {
	path := filepath.Join(projectDir, ProjectFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Default returns the built-in five-layer profile: fine background dust,
// small stars, sparse bright stars, large nebula blobs, and an ambient
// glow overlay, background to foreground.
func Default() *Profile {
	return &Profile{
		Version: "0.1.0",
		Seed:    DefaultSeed,
		Width:   1920,
		Height:  1080,
		Palette: []string{
			"#F5F3EE", // warm white
			"#FFFFFF", // white
			"#AFC9FF", // blue-white
			"#FFD2A1", // amber
			"#6B4F8E", // violet haze
			"#27406B", // deep blue haze
		},
		Layers: []LayerDef{
			{
				Name: "dust", Kind: "dust",
				DensityPerKpx: 2.8, MinDistance: 8, CenterBias: 0.1,
				SizeMin: 0.5, SizeMax: 1.5, AlphaMin: 0.2, AlphaMax: 0.6,
				ColorWeights: []float64{3, 2, 1, 0, 0, 0},
			},
			{
				Name: "stars_small", Kind: "star",
				DensityPerKpx: 1.2, MinDistance: 14, CenterBias: 0.2,
				SizeMin: 1, SizeMax: 2, AlphaMin: 0.4, AlphaMax: 0.9,
				ColorWeights: []float64{4, 3, 2, 1, 0, 0},
			},
			{
				Name: "stars_bright", Kind: "star_bright",
				DensityPerKpx: 0.25, MinDistance: 40, CenterBias: 0.35,
				SizeMin: 2, SizeMax: 4, AlphaMin: 0.7, AlphaMax: 1.0,
				ColorWeights: []float64{3, 3, 2, 2, 0, 0},
			},
			{
				Name: "nebula", Kind: "nebula",
				DensityPerKpx: 0.05, MinDistance: 120, CenterBias: 0.6,
				SizeMin: 60, SizeMax: 160, AlphaMin: 0.08, AlphaMax: 0.2,
				ColorWeights: []float64{0, 0, 0, 1, 3, 2},
			},
			{
				Name: "glow", Kind: "glow",
				DensityPerKpx: 0.02, MinDistance: 200, CenterBias: 0.8,
				SizeMin: 120, SizeMax: 260, AlphaMin: 0.04, AlphaMax: 0.1,
				ColorWeights: []float64{0, 0, 0, 0, 2, 3},
			},
		},
	}
}
