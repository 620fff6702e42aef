package profile

import "github.com/FromJayLee/starfield/pkg/layer"

// Profile is the top-level generation configuration: the palette, the
// ordered layer table, and the documented default seed. Layer order is
// meaningful — background first, foreground last.
type Profile struct {
	Version string     `yaml:"version" json:"version"`
	Seed    int32      `yaml:"seed" json:"seed"`
	Width   int        `yaml:"width" json:"width"`
	Height  int        `yaml:"height" json:"height"`
	Palette []string   `yaml:"palette" json:"palette"` // hex colors, #RRGGBB
	Layers  []LayerDef `yaml:"layers" json:"layers"`
}

// LayerDef declares one generation layer in profile form.
type LayerDef struct {
	Name          string    `yaml:"name" json:"name"`
	Kind          string    `yaml:"kind" json:"kind"`
	DensityPerKpx float64   `yaml:"density_per_kpx" json:"density_per_kpx"`
	Count         int       `yaml:"count,omitempty" json:"count,omitempty"`
	MinDistance   float64   `yaml:"min_distance" json:"min_distance"`
	MaxAttempts   int       `yaml:"max_attempts,omitempty" json:"max_attempts,omitempty"`
	CenterBias    float64   `yaml:"center_bias" json:"center_bias"`
	SizeMin       float64   `yaml:"size_min" json:"size_min"`
	SizeMax       float64   `yaml:"size_max" json:"size_max"`
	AlphaMin      float64   `yaml:"alpha_min" json:"alpha_min"`
	AlphaMax      float64   `yaml:"alpha_max" json:"alpha_max"`

	// ColorWeights weights the scene palette per index. Empty means
	// uniform over the whole palette.
	ColorWeights []float64 `yaml:"color_weights,omitempty" json:"color_weights,omitempty"`
}

// LayerSpecs resolves the profile's layer table against its palette into
// the specs the orchestrator consumes.
func (p *Profile) LayerSpecs() []layer.Spec {
	specs := make([]layer.Spec, 0, len(p.Layers))
	for _, def := range p.Layers {
		specs = append(specs, layer.Spec{
			Name:          def.Name,
			Kind:          def.Kind,
			DensityPerKpx: def.DensityPerKpx,
			Count:         def.Count,
			MinDistance:   def.MinDistance,
			MaxAttempts:   def.MaxAttempts,
			CenterBias:    def.CenterBias,
			SizeMin:       def.SizeMin,
			SizeMax:       def.SizeMax,
			AlphaMin:      def.AlphaMin,
			AlphaMax:      def.AlphaMax,
			Palette:       def.palette(len(p.Palette)),
		})
	}
	return specs
}

// palette expands the layer's color weights into weighted palette choices.
func (d LayerDef) palette(paletteSize int) []layer.ColorChoice {
	if paletteSize == 0 {
		return nil
	}
	choices := make([]layer.ColorChoice, 0, paletteSize)
	for i := 0; i < paletteSize; i++ {
		w := 1.0
		if i < len(d.ColorWeights) {
			w = d.ColorWeights[i]
		} else if len(d.ColorWeights) > 0 {
			w = 0
		}
		choices = append(choices, layer.ColorChoice{Index: i, Weight: w})
	}
	return choices
}
