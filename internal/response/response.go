// Package response builds the JSON envelope every endpoint answers with:
//
//	{"success": <bool>, "data": <object|null>, "errors": <object|string|null>}
//
// success mirrors whether the status is in the 2xx range, and exactly one
// of data/errors is non-null.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/deppfellow/person-service/internal/lib/utils"
)

const (
	// ContentTypeHeader and ContentTypeJSON are set on every envelope.
	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// fallbackBody is served when a payload cannot be serialized.
var fallbackBody = []byte(`{"data":null,"errors":"Internal Server Error","success":false}`)

// Response is a transport-neutral HTTP response. The Echo router and the
// Lambda adapter both write it out unchanged.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Envelope is the decoded form of a response body. It is what clients and
// tests read back.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

// IsSuccess reports whether status is in the conventional success class.
func IsSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// APIResponse wraps payload into the envelope for the given status.
//
// On success the envelope starts as {success, errors: null} and payload is
// merged in as data; otherwise it starts as {success, data: null} and
// payload is merged in as errors.
func APIResponse(status int, payload any) *Response {
	success := IsSuccess(status)

	value, err := utils.ToJSONValue(payload)
	if err != nil {
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{ContentTypeHeader: ContentTypeJSON},
			Body:       fallbackBody,
		}
	}

	var envelope any
	if success {
		envelope = map[string]any{"success": success, "errors": nil}
		utils.MergeJSON(&envelope, map[string]any{"data": value})
	} else {
		envelope = map[string]any{"success": success, "data": nil}
		utils.MergeJSON(&envelope, map[string]any{"errors": value})
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		body = fallbackBody
		status = http.StatusInternalServerError
	}

	return &Response{
		StatusCode: status,
		Headers:    map[string]string{ContentTypeHeader: ContentTypeJSON},
		Body:       body,
	}
}

// Decode parses a response body back into an Envelope.
func Decode(body []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}
