package leads

import (
	"sort"
	"strings"
)

// ValidationError reports which fields of a lead submission are
// missing or malformed. It is surfaced as a 422 with per-field detail
// and never logged as a server fault.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return "invalid lead: " + strings.Join(msgs, "; ")
}
