package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// InvalidResponseFormatMessage is the user-facing message for a malformed model response.
const InvalidResponseFormatMessage = "The AI returned an invalid response format."

// ErrInvalidResponseFormat matches any *ResponseFormatError via errors.Is.
var ErrInvalidResponseFormat = errors.New("invalid response format")

// ResponseFormatError reports a model payload that could not be parsed or
// did not have the expected shape. Raw holds the offending payload.
type ResponseFormatError struct {
	Raw string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return InvalidResponseFormatMessage
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

func (e *ResponseFormatError) Is(target error) bool {
	return target == ErrInvalidResponseFormat
}

// ParseTransformedBeliefs decodes a model response and validates its shape.
// Markdown code fences around the JSON are tolerated.
func ParseTransformedBeliefs(raw string) (*TransformedBeliefs, error) {
	text := stripCodeFence(raw)

	var result TransformedBeliefs
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, &ResponseFormatError{Raw: raw, Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &ResponseFormatError{Raw: raw, Err: err}
	}
	return &result, nil
}

// stripCodeFence removes a surrounding Markdown fence and its language tag,
// whatever its case.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		if tag, body, found := strings.Cut(rest, "\n"); found && !strings.ContainsAny(tag, "{[") {
			rest = body
		} else if len(rest) >= 4 && strings.EqualFold(rest[:4], "json") {
			rest = rest[4:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(rest), "```")
	}
	return strings.TrimSpace(s)
}
