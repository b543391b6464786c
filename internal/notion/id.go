package notion

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizeID validates a Notion object ID and returns its canonical
// dashed form. Notion accepts IDs copied from URLs (32 hex characters)
// and from the API (dashed UUIDs); both parse as UUIDs.
func NormalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("invalid notion id %q: %w", id, err)
	}
	return parsed.String(), nil
}

// PageURL builds the public URL for a page ID.
func PageURL(id string) string {
	return "https://notion.so/" + strings.ReplaceAll(id, "-", "")
}
