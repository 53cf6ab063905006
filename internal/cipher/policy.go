package cipher

import (
	"fmt"
	"strings"
)

// RunePolicy decides what happens to code points above 255.
type RunePolicy int

const (
	// PolicyStrict rejects text that would not round-trip.
	PolicyStrict RunePolicy = iota
	// PolicyTruncate drops the high bits silently.
	PolicyTruncate
)

// ParseRunePolicy maps a configuration value to a [RunePolicy].
// An empty string selects [PolicyStrict].
func ParseRunePolicy(s string) (RunePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "truncate":
		return PolicyTruncate, nil
	}
	return PolicyStrict, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p RunePolicy) String() string {
	if p == PolicyTruncate {
		return "truncate"
	}
	return "strict"
}
