package cache

import "fmt"

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs produce equal keys across processes.
type Keyer interface {
	// PreviewKey identifies a downscaled preview of a source image.
	PreviewKey(sourceHash string, limit int) string

	// PlanKey identifies the guide plan computed for an image and options.
	PlanKey(imageHash string, opts PlanKeyOpts) string

	// ArtifactKey identifies one rendered output of a plan.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts holds every input of plan computation except the image.
type PlanKeyOpts struct {
	NodeWidth  float64        `json:"node_width"`
	NodeHeight float64        `json:"node_height"`
	Widgets    map[string]any `json:"widgets"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// DefaultKeyer hashes the key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PreviewKey returns "preview:<hash>:<limit>".
func (DefaultKeyer) PreviewKey(sourceHash string, limit int) string {
	return fmt.Sprintf("preview:%s:%d", sourceHash, limit)
}

// PlanKey hashes the image hash together with the options. Map keys are
// sorted by encoding/json, so widget order does not matter.
func (DefaultKeyer) PlanKey(imageHash string, opts PlanKeyOpts) string {
	return hashKey("plan", imageHash, opts)
}

// ArtifactKey hashes the plan hash together with the output format.
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

var _ Keyer = DefaultKeyer{}
