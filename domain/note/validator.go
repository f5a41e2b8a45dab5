package note

import (
	"strings"

	"memory-gateway/pkg/errors"
)

// Payload is a candidate note body before validation
type Payload struct {
	Text string
}

// ValidatePayload checks a candidate note payload ahead of any store call.
// Text must be non-empty after trimming. Tag element types are enforced at
// JSON decode time by the transport layer.
func ValidatePayload(p Payload) error {
	if strings.TrimSpace(p.Text) == "" {
		return errors.NewValidationError("Text is required and must be a non-empty string")
	}
	return nil
}
