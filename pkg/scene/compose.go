package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/FromJayLee/starfield/pkg/layer"
	"github.com/FromJayLee/starfield/pkg/rng"
	"github.com/FromJayLee/starfield/pkg/sampler"
)

// defaultMaxAttempts is the candidate budget per active point when a layer
// does not set its own. Thirty is the customary Bridson value.
const defaultMaxAttempts = 30

// countCellArea caps derived point targets at one point per 8x8-pixel
// block, denser than any practical minimum distance allows anyway.
const countCellArea = 64

// TargetCount resolves a layer's point target for the given canvas. An
// explicit Count wins; otherwise the target is derived from the layer's
// density per thousand pixels and clamped into [1, area/64].
func TargetCount(spec layer.Spec, width, height int) int {
	count := spec.Count
	if count <= 0 {
		count = int(math.Round(spec.DensityPerKpx * float64(width) * float64(height) / 1000))
	}

	hi := width * height / countCellArea
	if hi < 1 {
		hi = 1
	}
	if count > hi {
		count = hi
	}
	if count < 1 {
		count = 1
	}
	return count
}

func samplingConfig(spec layer.Spec, width, height int) sampler.Config {
	attempts := spec.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	return sampler.Config{
		Width:       width,
		Height:      height,
		MinDistance: spec.MinDistance,
		MaxAttempts: attempts,
		CenterBias:  spec.CenterBias,
		MaxPoints:   TargetCount(spec, width, height),
	}
}

// Compose runs the full generation pass: for each layer, in declared order,
// sample a point set and attribute it, all fed by one continuously
// advancing generator seeded once. The result is a pure function of
// (seed, width, height, layers); no state survives between calls.
//
// All configuration is validated up front, before the first draw, so a
// failure never leaves a partially generated scene.
func Compose(seed int32, width, height int, layers []layer.Spec) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: canvas must be positive, got %dx%d", width, height)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("scene: at least one layer is required")
	}
	for i, spec := range layers {
		if err := samplingConfig(spec, width, height).Validate(); err != nil {
			return nil, fmt.Errorf("scene: layer %d (%s): %w", i, spec.Name, err)
		}
	}

	r := rng.New(seed)
	s := &Scene{
		Seed:        seed,
		Width:       width,
		Height:      height,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Layers:      make([]LayerOutput, 0, len(layers)),
	}

	for _, spec := range layers {
		points, err := sampler.Sample(r, samplingConfig(spec, width, height))
		if err != nil {
			return nil, fmt.Errorf("scene: layer %s: %w", spec.Name, err)
		}
		s.Layers = append(s.Layers, LayerOutput{
			Name:    spec.Name,
			Kind:    spec.Kind,
			Records: layer.Generate(r, spec, points),
		})
	}

	return s, nil
}
