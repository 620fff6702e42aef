package profile

import (
	"fmt"
	"regexp"

	"github.com/FromJayLee/starfield/pkg/validation"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate runs configuration-level checks on a profile. Errors describe
// values that would make generation fail or produce nonsense; warnings
// flag suspicious but workable values.
func Validate(p *Profile) *validation.Report {
	r := validation.NewReport()

	if p == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelConfig,
			Message: "profile is nil",
		})
		return r
	}

	if p.Width <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "canvas width must be positive",
			Path:        "width",
			ActualValue: p.Width,
			Expected:    "> 0",
		})
	}
	if p.Height <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     "canvas height must be positive",
			Path:        "height",
			ActualValue: p.Height,
			Expected:    "> 0",
		})
	}

	if len(p.Palette) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelConfig,
			Message:  "palette is empty",
			Path:     "palette",
			Expected: "at least one #RRGGBB color",
		})
	}
	for i, c := range p.Palette {
		if !hexColorRe.MatchString(c) {
			r.AddError(validation.Result{
				Level:       validation.LevelConfig,
				Message:     fmt.Sprintf("palette[%d] is not a #RRGGBB color", i),
				Path:        fmt.Sprintf("palette[%d]", i),
				ActualValue: c,
				Expected:    "#RRGGBB",
			})
		}
	}

	if len(p.Layers) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelConfig,
			Message:  "no layers declared",
			Path:     "layers",
			Expected: "at least one layer",
		})
	}

	seen := make(map[string]bool, len(p.Layers))
	for i, def := range p.Layers {
		validateLayerDef(def, i, len(p.Palette), r)
		if seen[def.Name] {
			r.AddError(validation.Result{
				Level:       validation.LevelConfig,
				Message:     fmt.Sprintf("duplicate layer name %q", def.Name),
				Path:        fmt.Sprintf("layers[%d].name", i),
				ActualValue: def.Name,
			})
		}
		seen[def.Name] = true
	}

	return r
}

func validateLayerDef(def LayerDef, idx, paletteSize int, r *validation.Report) {
	path := fmt.Sprintf("layers[%d]", idx)

	if def.Name == "" {
		r.AddError(validation.Result{
			Level:    validation.LevelConfig,
			Message:  fmt.Sprintf("layer %d has no name", idx),
			Path:     path + ".name",
			Expected: "non-empty string",
		})
	}
	if def.MinDistance <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: min_distance must be positive", def.Name),
			Path:        path + ".min_distance",
			ActualValue: def.MinDistance,
			Expected:    "> 0",
		})
	}
	if def.Count <= 0 && def.DensityPerKpx <= 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelConfig,
			Message:  fmt.Sprintf("layer %s: either count or density_per_kpx must be positive", def.Name),
			Path:     path,
			Expected: "count > 0 or density_per_kpx > 0",
		})
	}
	if def.CenterBias < 0 || def.CenterBias > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: center_bias outside [0,1]", def.Name),
			Path:        path + ".center_bias",
			ActualValue: def.CenterBias,
			Expected:    "[0,1]",
		})
	}
	if def.SizeMin > def.SizeMax || def.SizeMin < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: invalid size range", def.Name),
			Path:        path + ".size_min",
			ActualValue: fmt.Sprintf("[%v,%v]", def.SizeMin, def.SizeMax),
			Expected:    "0 <= size_min <= size_max",
		})
	}
	if def.AlphaMin > def.AlphaMax || def.AlphaMin < 0 || def.AlphaMax > 1 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: invalid alpha range", def.Name),
			Path:        path + ".alpha_min",
			ActualValue: fmt.Sprintf("[%v,%v]", def.AlphaMin, def.AlphaMax),
			Expected:    "0 <= alpha_min <= alpha_max <= 1",
		})
	}
	if def.MaxAttempts < 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: max_attempts must not be negative", def.Name),
			Path:        path + ".max_attempts",
			ActualValue: def.MaxAttempts,
		})
	}
	if len(def.ColorWeights) > paletteSize {
		r.AddError(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: %d color weights for a %d-color palette", def.Name, len(def.ColorWeights), paletteSize),
			Path:        path + ".color_weights",
			ActualValue: len(def.ColorWeights),
			Expected:    fmt.Sprintf("<= %d", paletteSize),
		})
	}

	if def.DensityPerKpx > 10 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelConfig,
			Message:     fmt.Sprintf("layer %s: density %v per kpx is unusually high", def.Name, def.DensityPerKpx),
			Path:        path + ".density_per_kpx",
			ActualValue: def.DensityPerKpx,
			Suggestions: []string{"typical backgrounds stay below 5 points per thousand pixels"},
		})
	}
}
