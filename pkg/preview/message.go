package preview

import (
	"encoding/json"
	"image"
	"sort"

	"github.com/quasiblob/compositionguides/pkg/errors"
)

// EventName is the event a preview message is published under.
const EventName = "eses.composition_guides_preview"

// ClassType is the node class the workflow prompt lists for guide nodes.
const ClassType = "EsesCompositionGuides"

// Message carries one preview image to a node.
type Message struct {
	NodeID    string `json:"node_id"`
	ImageData string `json:"image_data"`
}

// Validate checks that the message names a node and carries data.
func (m Message) Validate() error {
	if err := errors.ValidateNodeID(m.NodeID); err != nil {
		return err
	}
	if m.ImageData == "" {
		return errors.New(errors.ErrCodeInvalidPayload, "message for node %s has no image data", m.NodeID)
	}
	return nil
}

// Image decodes the message payload.
func (m Message) Image() (image.Image, error) {
	return DecodePayload(m.ImageData)
}

// Prepare downscales img to limit and wraps it in a message for nodeID.
// The limit is snapped with Limit first.
func Prepare(nodeID string, img image.Image, limit int) (Message, error) {
	data, err := EncodePayload(Downscale(img, Limit(limit)))
	if err != nil {
		return Message{}, err
	}
	return Message{NodeID: nodeID, ImageData: data}, nil
}

// PromptNode is one entry of a workflow prompt.
type PromptNode struct {
	ClassType string          `json:"class_type"`
	Inputs    json.RawMessage `json:"inputs,omitempty"`
}

// NodeIDFromPrompt returns the id of the first node of the given class in a
// workflow prompt. Numeric ids compare numerically ("9" before "10") so the
// result does not depend on map iteration. The boolean is false when no node matches, in
// which case no message should be sent.
func NodeIDFromPrompt(prompt map[string]PromptNode, classType string) (string, bool) {
	ids := make([]string, 0, len(prompt))
	for id, n := range prompt {
		if n.ClassType == classType {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "", false
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
	return ids[0], true
}
