package urn

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single colon separated segment.
var segmentRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// URN is an opaque tenant identifier.
type URN string

// Parse validates raw text and returns it as an identifier.
func Parse(raw string) (URN, error) {
	if raw == "" {
		return "", fmt.Errorf("identifier cannot be empty")
	}
	for _, segment := range strings.Split(raw, ":") {
		if segment == "" {
			return "", fmt.Errorf("identifier %q contains empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return "", fmt.Errorf("invalid identifier segment %q in %q", segment, raw)
		}
	}
	return URN(raw), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(raw string) URN {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the canonical form.
func (u URN) String() string {
	return string(u)
}

// Empty reports whether the identifier is the zero value.
func (u URN) Empty() bool {
	return u == ""
}

// Compare orders identifiers by their canonical form.
func (u URN) Compare(other URN) int {
	return strings.Compare(string(u), string(other))
}
