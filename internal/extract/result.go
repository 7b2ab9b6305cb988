// Package extract recovers structured event metadata from the noisy,
// unlabeled text that OCR produces for event posters. Each field has its own
// extractor applying an ordered cascade of heuristics; all of them are pure
// functions over their input text and safe for concurrent use. Absence of a
// field is data, not failure: extractors return a three-state FieldValue and
// never an error.
package extract

import "github.com/posterscan/posterscan/constants"

type valueState uint8

const (
	stateNotFound valueState = iota
	stateNotSpecified
	stateFound
)

// FieldValue is the result of one field extractor: a found value, or one of
// the two absence states. The display sentinels ("Not found", "Not
// specified") only materialize at the serialization boundary via Display.
type FieldValue struct {
	state valueState
	text  string
}

// Found wraps a recovered value.
func Found(s string) FieldValue { return FieldValue{state: stateFound, text: s} }

// NotFound marks a field no heuristic could recover.
func NotFound() FieldValue { return FieldValue{state: stateNotFound} }

// NotSpecified marks a field the poster genuinely does not state
// (used only by the audience and event-type extractors).
func NotSpecified() FieldValue { return FieldValue{state: stateNotSpecified} }

// IsFound reports whether the extractor recovered a value.
func (v FieldValue) IsFound() bool { return v.state == stateFound }

// Text returns the recovered value, or "" for either absence state.
func (v FieldValue) Text() string { return v.text }

// Display renders the value for output, mapping absence to its sentinel.
func (v FieldValue) Display() string {
	switch v.state {
	case stateFound:
		return v.text
	case stateNotSpecified:
		return constants.NotSpecified
	default:
		return constants.NotFound
	}
}
