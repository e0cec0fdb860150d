package contain

import "strings"

// benignPhrases are the known phrasings of the size-observation loop cutoff,
// matched case-insensitively as substrings of a fault's message and stack.
var benignPhrases = []string{
	"resizeobserver loop completed with undelivered notifications",
	"resizeobserver loop limit exceeded",
	"resizeobserver: loop limit exceeded",
}

// Benign reports whether v is the benign size-observation delivery fault.
//
// It inspects the value's message (and stack, for captured faults) against a
// fixed phrase set. Classification is conservative by policy: a missed benign
// fault costs cosmetic noise, while a false positive silently swallows a real
// failure. Values that carry no recognizable text are never benign. Benign
// never panics.
func Benign(v any) bool {
	var text string

	switch x := v.(type) {
	case *Fault:
		if x == nil {
			return false
		}
		text = x.Message + "\n" + x.Stack
	default:
		t, ok := messageOf(v)
		if !ok {
			return false
		}
		text = t
	}

	return benignText(text)
}

func benignText(text string) bool {
	t := strings.ToLower(text)

	for _, phrase := range benignPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}

	// Generic form: the observer name together with the loop cutoff wording.
	// "loop" alone is deliberately not enough.
	return strings.Contains(t, "resizeobserver") && strings.Contains(t, "loop")
}
