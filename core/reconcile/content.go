package reconcile

import (
	"bytes"

	"display-sync/core/utils"

	"github.com/goccy/go-json"
)

// externalIDKey is the content field carrying a provider-stable identifier.
// Feeds without stable ids simply omit it and fall back to full content
// comparison.
const externalIDKey = "externalId"

// contentEqual reports whether two content payloads are structurally equal.
// Payloads come out of JSON and XML decoding, so comparing their canonical
// JSON encodings (map keys are sorted during marshalling) is exact.
func contentEqual(a, b map[string]any) bool {
	rawA, errA := json.Marshal(a)
	rawB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(rawA, rawB)
}

// externalID extracts the external id of a content payload, if present and
// non-empty. Ids may arrive as strings or numbers depending on the feed.
func externalID(content map[string]any) (string, bool) {
	val, ok := content[externalIDKey]
	if !ok || val == nil {
		return "", false
	}

	id := utils.ToString(val)
	return id, id != ""
}
