package sink

import (
	"encoding/json"

	"github.com/quasiblob/compositionguides/pkg/errors"
	"github.com/quasiblob/compositionguides/pkg/guides"
)

// Stroke command operators in JSON output.
const (
	OpMoveTo = "move_to"
	OpLineTo = "line_to"
)

type jsonOutput struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Color    string        `json:"color"`
	Plan     guides.Plan   `json:"plan"`
	Commands []jsonCommand `json:"commands"`
}

type jsonCommand struct {
	Op string  `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// RenderJSON writes the plan together with the canvas size and the flat
// move/line command list a canvas would execute for the guide path.
func RenderJSON(plan guides.Plan, opts ...Option) ([]byte, error) {
	c := newConfig(plan, opts)

	out := jsonOutput{
		Width:    c.size.X,
		Height:   c.size.Y,
		Color:    plan.Style.Color.String(),
		Plan:     plan,
		Commands: make([]jsonCommand, 0, 2*len(plan.Segments)),
	}
	for _, s := range plan.Segments {
		out.Commands = append(out.Commands,
			jsonCommand{Op: OpMoveTo, X: s.A.X, Y: s.A.Y},
			jsonCommand{Op: OpLineTo, X: s.B.X, Y: s.B.Y})
	}

	var data []byte
	var err error
	if c.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode plan json")
	}
	return data, nil
}

// ReadJSON recovers the plan from RenderJSON output.
func ReadJSON(data []byte) (guides.Plan, error) {
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return guides.Plan{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode plan json")
	}
	return out.Plan, nil
}
