package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FromJayLee/starfield/pkg/profile"
	"github.com/FromJayLee/starfield/pkg/render"
	"github.com/FromJayLee/starfield/pkg/scene"
)

// loadAndValidate loads the project profile and runs configuration checks.
func loadAndValidate(projectPath string) (*profile.Profile, error) {
	p, err := profile.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	report := profile.Validate(p)
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("profile has validation errors")
	}
	return p, nil
}

// resolve applies flag overrides on top of the profile settings.
func resolve(p *profile.Profile, flags genFlags) (seed int32, width, height int) {
	seed, width, height = p.Seed, p.Width, p.Height
	if flags.seedSet {
		seed = flags.seed
	}
	if flags.width > 0 {
		width = flags.width
	}
	if flags.height > 0 {
		height = flags.height
	}
	return seed, width, height
}

func runGenerate(projectPath string, flags genFlags) error {
	p, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	seed, width, height := resolve(p, flags)
	sc, err := scene.Compose(seed, width, height, p.LayerSpecs())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sc)
}

func runValidate(projectPath string, flags genFlags) error {
	p, err := profile.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	report := profile.Validate(p)
	if report.Valid {
		// Configuration is sound; generate one scene and check its
		// structural invariants too.
		seed, width, height := resolve(p, flags)
		sc, err := scene.Compose(seed, width, height, p.LayerSpecs())
		if err != nil {
			return err
		}
		report.Merge(scene.ValidateScene(sc, p.LayerSpecs()))
	}

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRender(projectPath string, flags genFlags, out string) error {
	p, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	seed, width, height := resolve(p, flags)
	sc, err := scene.Compose(seed, width, height, p.LayerSpecs())
	if err != nil {
		return err
	}

	if err := render.SavePNG(sc, p.Palette, out); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}

	printSceneSummary(sc, out)
	return nil
}
