package scene

import "github.com/FromJayLee/starfield/pkg/layer"

// LayerOutput is the ordered record list produced by one generation layer.
type LayerOutput struct {
	Name    string            `json:"name"`
	Kind    string            `json:"kind"`
	Records []layer.Placement `json:"records"`
}

// Scene is the complete renderer-agnostic output of one generation pass.
// Layers appear in declared order, background to foreground.
type Scene struct {
	Seed        int32         `json:"seed"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	GeneratedAt string        `json:"generated_at"`
	Layers      []LayerOutput `json:"layers"`
}

// TotalRecords returns the number of placement records across all layers.
func (s *Scene) TotalRecords() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Records)
	}
	return n
}

// LayerByName returns the output for the named layer, or nil if absent.
func (s *Scene) LayerByName(name string) *LayerOutput {
	for i := range s.Layers {
		if s.Layers[i].Name == name {
			return &s.Layers[i]
		}
	}
	return nil
}
