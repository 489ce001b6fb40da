// Package sanitize strips markup from untrusted free-text input.
// Everything arriving through the public submission form passes through here
// before it is persisted or embedded in outgoing email.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from the input and trims surrounding whitespace.
func Text(input string) string {
	return strings.TrimSpace(strict.Sanitize(input))
}
