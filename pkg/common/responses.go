package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// GenericErrorMessage is the fixed-shape body for unanticipated faults.
// Internal detail is logged server-side and never echoed to the client.
const GenericErrorMessage = "Something went wrong!"

// ErrorBody is the client-facing error shape: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// RespondError writes a {"error": message} body with the given status
func RespondError(w http.ResponseWriter, status int, message string) {
	_ = RespondJSON(w, status, ErrorBody{Error: message})
}

// RespondRaw relays upstream bytes verbatim with the upstream status
func RespondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// DecodeJSONBody parses a JSON request body with a size limit.
// Returns a client-readable message for malformed bodies; type mismatches
// on a named field get a field-specific message.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch {
			case strings.HasPrefix(typeErr.Field, "tags"):
				return errors.New("Tags must be an array of strings")
			case typeErr.Field == "text":
				return errors.New("Text is required and must be a non-empty string")
			}
		}
		return errors.New("Invalid JSON body")
	}
	return nil
}
