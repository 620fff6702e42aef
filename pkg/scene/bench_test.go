package scene

import (
	"testing"

	"github.com/FromJayLee/starfield/pkg/layer"
)

// benchLayers approximates the default five-layer profile without importing
// the profile package (which depends on this one).
func benchLayers() []layer.Spec {
	return []layer.Spec{
		{Name: "dust", Kind: "dust", DensityPerKpx: 2.8, MinDistance: 8, CenterBias: 0.1,
			SizeMin: 0.5, SizeMax: 1.5, AlphaMin: 0.2, AlphaMax: 0.6,
			Palette: []layer.ColorChoice{{Index: 0, Weight: 1}}},
		{Name: "stars_small", Kind: "star", DensityPerKpx: 1.2, MinDistance: 14, CenterBias: 0.2,
			SizeMin: 1, SizeMax: 2, AlphaMin: 0.4, AlphaMax: 0.9,
			Palette: []layer.ColorChoice{{Index: 1, Weight: 1}}},
		{Name: "stars_bright", Kind: "star_bright", DensityPerKpx: 0.25, MinDistance: 40, CenterBias: 0.35,
			SizeMin: 2, SizeMax: 4, AlphaMin: 0.7, AlphaMax: 1,
			Palette: []layer.ColorChoice{{Index: 2, Weight: 1}}},
		{Name: "nebula", Kind: "nebula", DensityPerKpx: 0.05, MinDistance: 120, CenterBias: 0.6,
			SizeMin: 60, SizeMax: 160, AlphaMin: 0.08, AlphaMax: 0.2,
			Palette: []layer.ColorChoice{{Index: 3, Weight: 1}}},
		{Name: "glow", Kind: "glow", DensityPerKpx: 0.02, MinDistance: 200, CenterBias: 0.8,
			SizeMin: 120, SizeMax: 260, AlphaMin: 0.04, AlphaMax: 0.1,
			Palette: []layer.ColorChoice{{Index: 4, Weight: 1}}},
	}
}

func BenchmarkCompose1080p(b *testing.B) {
	specs := benchLayers()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compose(int32(i), 1920, 1080, specs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompose4K(b *testing.B) {
	specs := benchLayers()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compose(int32(i), 3840, 2160, specs); err != nil {
			b.Fatal(err)
		}
	}
}
