package reconcile

// SlideDescriptor is the desired state of one slide: a template and an
// opaque, provider-defined content payload. Descriptors are constructed
// fresh on every sync run and never persisted.
type SlideDescriptor struct {
	// TemplateID is the IRI of the template the slide is rendered with.
	TemplateID string
	// Content is the provider-defined content payload. It is compared by
	// structural equality when deciding whether an existing slide can be
	// reused.
	Content map[string]any
}

// Status classifies the outcome of reconciling one screen.
type Status string

const (
	// StatusSuccess means the screen's playlist now reflects the desired
	// slide list.
	StatusSuccess Status = "success"

	// StatusError means a Display API interaction failed while converging
	// the screen's playlist.
	StatusError Status = "error"

	// StatusNotFound means the feed referenced a screen name that does not
	// exist in the Display API. This is an expected condition, not an
	// error.
	StatusNotFound Status = "not_found"
)

// Result is the per-screen outcome of a sync run.
type Result struct {
	// Name is the screen name the feed addressed.
	Name string `json:"name"`

	// Status is the reconciliation outcome for that screen.
	Status Status `json:"status"`
}
