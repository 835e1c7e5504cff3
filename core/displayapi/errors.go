package displayapi

import "errors"

// ErrTemplateNotFound is returned when a template title does not resolve to
// exactly one template. Feed syncs treat this as fatal for the current run
// since slides cannot be created without a template id.
var ErrTemplateNotFound = errors.New("template not found")
