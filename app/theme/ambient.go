package theme

import (
	"net/http"
	"strings"
)

// HintHeader is the user-agent client hint carrying the colour-scheme preference.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// HintAmbient reads the colour-scheme client hint from a request.
type HintAmbient struct {
	Request *http.Request
}

// PrefersDark is true only when the hint is present and equals "dark".
func (a HintAmbient) PrefersDark() bool {
	if a.Request == nil {
		return false
	}
	v := strings.Trim(strings.TrimSpace(a.Request.Header.Get(HintHeader)), `"`)
	return strings.EqualFold(v, "dark")
}

// StaticAmbient is a fixed ambient preference, true meaning dark.
type StaticAmbient bool

// PrefersDark returns the fixed preference.
func (s StaticAmbient) PrefersDark() bool { return bool(s) }
