// Package language defines the closed set of translation targets.
package language

import "fmt"

// Selection is a translation target chosen by the caller.
// The set is closed: unknown names are rejected at parse time and
// never reach a backend.
type Selection string

const (
	None    Selection = "None"
	French  Selection = "French"
	Spanish Selection = "Spanish"
	Hindi   Selection = "Hindi"
	English Selection = "English"
)

// codes maps each selection to its ISO-639-1 code. None maps to the
// empty string, meaning no translation requested.
var codes = map[Selection]string{
	None:    "",
	French:  "fr",
	Spanish: "es",
	Hindi:   "hi",
	English: "en",
}

// Parse converts a user-supplied name into a Selection.
func Parse(name string) (Selection, error) {
	if name == "" {
		return None, nil
	}
	sel := Selection(name)
	if _, ok := codes[sel]; !ok {
		return None, fmt.Errorf("unknown language %q (choose one of %v)", name, All())
	}
	return sel, nil
}

// Code returns the ISO code for the selection, or "" for None.
func (s Selection) Code() string {
	return codes[s]
}

// Requested reports whether the selection asks for a real translation.
func (s Selection) Requested() bool {
	return codes[s] != ""
}

// All returns every valid selection name in a stable order.
func All() []Selection {
	return []Selection{None, French, Spanish, Hindi, English}
}
