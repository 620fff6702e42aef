package scene

import (
	"fmt"

	"github.com/FromJayLee/starfield/pkg/layer"
	"github.com/FromJayLee/starfield/pkg/validation"
)

// Integer rounding of accepted points can shave up to one pixel off the
// true pairwise distance.
const roundingSlack = 1.0

// ValidateScene performs structural validation on a generated scene against
// the layer specs that produced it: bounds containment, per-layer minimum
// distance, attribute ranges, and layer bookkeeping.
func ValidateScene(s *Scene, specs []layer.Spec) *validation.Report {
	r := validation.NewReport()

	if s == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene is nil",
		})
		return r
	}

	if len(s.Layers) != len(specs) {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("scene has %d layers, specs declare %d", len(s.Layers), len(specs)),
			ActualValue: len(s.Layers),
			Expected:    fmt.Sprintf("%d layers", len(specs)),
		})
		return r
	}

	for i := range s.Layers {
		validateLayerOutput(&s.Layers[i], specs[i], s.Width, s.Height, i, r)
	}

	r.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("%d layers, %d records", len(s.Layers), s.TotalRecords()),
	})
	return r
}

func validateLayerOutput(out *LayerOutput, spec layer.Spec, width, height, idx int, r *validation.Report) {
	path := fmt.Sprintf("layers[%d]", idx)

	if out.Name == "" {
		r.AddError(validation.Result{
			Level:    validation.LevelSpatial,
			Message:  fmt.Sprintf("layer %d has empty name", idx),
			Path:     path + ".name",
			Expected: "non-empty string",
		})
	}
	if out.Name != spec.Name {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("layer %d named %q, spec declares %q", idx, out.Name, spec.Name),
			Path:        path + ".name",
			ActualValue: out.Name,
			Expected:    spec.Name,
		})
	}

	maxColor := -1
	for _, c := range spec.Palette {
		if c.Index > maxColor {
			maxColor = c.Index
		}
	}

	for j, rec := range out.Records {
		recPath := fmt.Sprintf("%s.records[%d]", path, j)

		if rec.Point.X < 0 || rec.Point.X >= width || rec.Point.Y < 0 || rec.Point.Y >= height {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("layer %s: point %v outside %dx%d canvas", out.Name, rec.Point, width, height),
				Path:        recPath + ".point",
				ActualValue: rec.Point,
			})
		}
		if rec.Kind != spec.Kind {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("layer %s: record kind %q, spec declares %q", out.Name, rec.Kind, spec.Kind),
				Path:        recPath + ".kind",
				ActualValue: rec.Kind,
				Expected:    spec.Kind,
			})
		}
		if rec.Size < spec.SizeMin || rec.Size > spec.SizeMax {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("layer %s: size %v outside [%v,%v]", out.Name, rec.Size, spec.SizeMin, spec.SizeMax),
				Path:        recPath + ".size",
				ActualValue: rec.Size,
			})
		}
		if rec.Alpha < spec.AlphaMin || rec.Alpha > spec.AlphaMax {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("layer %s: alpha %v outside [%v,%v]", out.Name, rec.Alpha, spec.AlphaMin, spec.AlphaMax),
				Path:        recPath + ".alpha",
				ActualValue: rec.Alpha,
			})
		}
		if maxColor >= 0 && (rec.ColorIndex < 0 || rec.ColorIndex > maxColor) {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("layer %s: color index %d outside palette", out.Name, rec.ColorIndex),
				Path:        recPath + ".color_index",
				ActualValue: rec.ColorIndex,
			})
		}
	}

	validateMinDistance(out, spec, r)

	if len(out.Records) == 0 {
		r.AddWarning(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("layer %s produced no records", out.Name),
			Path:    path,
		})
	}
}

func validateMinDistance(out *LayerOutput, spec layer.Spec, r *validation.Report) {
	limit := spec.MinDistance - roundingSlack
	if limit <= 0 {
		return
	}
	for i := 0; i < len(out.Records); i++ {
		for j := i + 1; j < len(out.Records); j++ {
			d := out.Records[i].Point.Distance(out.Records[j].Point)
			if d < limit {
				r.AddError(validation.Result{
					Level: validation.LevelSpatial,
					Message: fmt.Sprintf("layer %s: points %v and %v are %.2f apart, minimum %v",
						out.Name, out.Records[i].Point, out.Records[j].Point, d, spec.MinDistance),
					ActualValue: d,
					Expected:    fmt.Sprintf(">= %v", spec.MinDistance),
				})
			}
		}
	}
}
