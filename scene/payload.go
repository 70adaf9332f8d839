package scene

import "encoding/json"

// Payload is the JSON shape consumed by the visualizer.
type Payload struct {
	Status    string                `json:"status"`
	Points    []float64             `json:"points"`
	Cells     map[string]*Component `json:"cells"`
	NumPoints int                   `json:"num_points"`
	NumGroups int                   `json:"num_groups"`
	Skipped   []string              `json:"skipped,omitempty"`
}

// Payload wraps the scene with its bookkeeping counts.
func (s *Scene) Payload() *Payload {
	return &Payload{
		Status:    "success",
		Points:    s.Points,
		Cells:     s.Cells,
		NumPoints: s.NumPoints(),
		NumGroups: len(s.Cells),
		Skipped:   s.Skipped,
	}
}

func (p *Payload) MarshalCompact() ([]byte, error) {
	return json.Marshal(p)
}

func (p *Payload) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
