package model

// Spec is the text of one unit's definition in the reference grammar.
type Spec struct {
	text string
}

// NewSpec wraps text as a Spec. No validation happens here; the grammar
// rejects malformed text when the spec is parsed.
func NewSpec(text string) Spec {
	return Spec{text: text}
}

// Text returns the raw spec text.
func (s Spec) Text() string {
	return s.text
}
