package layer

import (
	"testing"

	"github.com/FromJayLee/starfield/pkg/geo"
	"github.com/FromJayLee/starfield/pkg/rng"
)

func starSpec() Spec {
	return Spec{
		Name:        "stars_small",
		Kind:        "star",
		MinDistance: 14,
		SizeMin:     1.0,
		SizeMax:     2.0,
		AlphaMin:    0.4,
		AlphaMax:    0.9,
		Palette: []ColorChoice{
			{Index: 0, Weight: 3},
			{Index: 1, Weight: 1},
			{Index: 2, Weight: 1},
		},
	}
}

func somePoints() []geo.Point {
	return []geo.Point{
		geo.Pt(10, 20), geo.Pt(50, 60), geo.Pt(100, 30),
		geo.Pt(7, 140), geo.Pt(180, 90),
	}
}

func TestGenerateOneRecordPerPoint(t *testing.T) {
	spec := starSpec()
	points := somePoints()
	records := Generate(rng.New(42), spec, points)

	if len(records) != len(points) {
		t.Fatalf("expected %d records, got %d", len(points), len(records))
	}
	for i, rec := range records {
		if rec.Point != points[i] {
			t.Errorf("record %d: point %v, want %v (order must follow input)", i, rec.Point, points[i])
		}
		if rec.Kind != "star" {
			t.Errorf("record %d: kind %q, want star", i, rec.Kind)
		}
	}
}

func TestGenerateAttributeRanges(t *testing.T) {
	spec := starSpec()
	records := Generate(rng.New(7), spec, somePoints())

	for i, rec := range records {
		if rec.Size < spec.SizeMin || rec.Size >= spec.SizeMax {
			t.Errorf("record %d: size %v outside [%v,%v)", i, rec.Size, spec.SizeMin, spec.SizeMax)
		}
		if rec.Alpha < spec.AlphaMin || rec.Alpha >= spec.AlphaMax {
			t.Errorf("record %d: alpha %v outside [%v,%v)", i, rec.Alpha, spec.AlphaMin, spec.AlphaMax)
		}
		if rec.ColorIndex < 0 || rec.ColorIndex > 2 {
			t.Errorf("record %d: color index %d outside palette", i, rec.ColorIndex)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	spec := starSpec()
	points := somePoints()

	a := Generate(rng.New(1337), spec, points)
	b := Generate(rng.New(1337), spec, points)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateDrawCount(t *testing.T) {
	// Three draws per point, independent of palette contents.
	points := somePoints()
	a := rng.New(99)
	b := rng.New(99)

	Generate(a, starSpec(), points)
	for i := 0; i < 3*len(points); i++ {
		b.Next()
	}
	if a.Next() != b.Next() {
		t.Error("Generate did not consume exactly three draws per point")
	}

	empty := starSpec()
	empty.Palette = nil
	a = rng.New(99)
	Generate(a, empty, points)
	b = rng.New(99)
	for i := 0; i < 3*len(points); i++ {
		b.Next()
	}
	if a.Next() != b.Next() {
		t.Error("empty palette changed the draw count")
	}
}

func TestPickColorWeights(t *testing.T) {
	spec := starSpec()
	spec.Palette = []ColorChoice{
		{Index: 4, Weight: 0},
		{Index: 9, Weight: 1},
	}

	r := rng.New(3)
	points := make([]geo.Point, 200)
	for _, rec := range Generate(r, spec, points) {
		if rec.ColorIndex != 9 {
			t.Fatalf("zero-weight palette entry selected: index %d", rec.ColorIndex)
		}
	}
}

func TestPickColorUnweighted(t *testing.T) {
	spec := starSpec()
	spec.Palette = []ColorChoice{{Index: 0}, {Index: 1}, {Index: 2}}

	r := rng.New(11)
	points := make([]geo.Point, 300)
	seen := map[int]int{}
	for _, rec := range Generate(r, spec, points) {
		seen[rec.ColorIndex]++
	}
	for idx := 0; idx < 3; idx++ {
		if seen[idx] == 0 {
			t.Errorf("unweighted palette never selected index %d", idx)
		}
	}
}
