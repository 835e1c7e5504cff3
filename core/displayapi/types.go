package displayapi

// Slide is a slide resource as returned by the Display API, reduced to the
// fields the sync features act on.
type Slide struct {
	// ID is the slide id, extracted from the resource IRI.
	ID string
	// Title is the slide's display title.
	Title string
	// TemplateID is the IRI of the template the slide is rendered with.
	TemplateID string
	// Content is the template-defined content payload.
	Content map[string]any
}

// PlaylistSlide is a slide as currently attached to a playlist.
type PlaylistSlide struct {
	// SlideID is the attached slide's id.
	SlideID string
	// Content is the attached slide's content payload.
	Content map[string]any
	// Weight is the slide's position within the playlist.
	Weight int
}

// PlaylistItem is one entry of a playlist save request.
type PlaylistItem struct {
	// SlideID is the slide to attach.
	SlideID string `json:"slide"`
	// Weight is the zero-based position the slide should get.
	Weight int `json:"weight"`
}

// Playlist is a playlist resource resolved by name.
type Playlist struct {
	// ID is the playlist id, extracted from the resource IRI.
	ID string
	// Name is the playlist's title.
	Name string
}

// Screen is a screen resource. Only the title is relevant: feeds address
// screens by name.
type Screen struct {
	Title string
}

// CreateSlideInput is the payload for creating a new slide.
type CreateSlideInput struct {
	// Title is the display title for the new slide.
	Title string
	// TemplateID is the IRI of the template to render the slide with.
	TemplateID string
	// Content is the template-defined content payload.
	Content map[string]any
}
