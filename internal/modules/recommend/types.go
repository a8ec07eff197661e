package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Request is a validated recommendation request.
type Request struct {
	Prompt  string
	Persona Persona
}

type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Explanation     string           `json:"explanation"`
}

// recommendDTO keeps userType raw so an absent field can be told apart
// from an explicit null or empty string.
type recommendDTO struct {
	Prompt   string          `json:"prompt"`
	UserType json.RawMessage `json:"userType"`
}

var (
	ErrPromptRequired  = errors.New("prompt is required")
	ErrInvalidPersona  = errors.New("invalid user type")
	ErrEmptyCatalog    = errors.New("no movies found in database")
	ErrConfiguration   = errors.New("api key is not configured")
	ErrUpstream        = errors.New("upstream completion failed")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrMalformedOutput = errors.New("invalid json from model")
)

// UpstreamError describes a failed exchange with the completion service.
// StatusCode is zero for transport failures.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, truncate(e.Body, 200))
	case e.Err != nil:
		return "upstream request failed: " + e.Err.Error()
	}
	return ErrUpstream.Error()
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
func (e *UpstreamError) Unwrap() error        { return e.Err }

// Details is the diagnostic surfaced to the client: the upstream body when
// there is one, otherwise the transport error.
func (e *UpstreamError) Details() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// MalformedOutputError carries the unmodified model output that failed to
// parse or did not match the expected shape.
type MalformedOutputError struct {
	Raw    string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	return ErrMalformedOutput.Error() + ": " + e.Reason
}

func (e *MalformedOutputError) Is(target error) bool { return target == ErrMalformedOutput }

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
