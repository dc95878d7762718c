package app

import "strings"

const tracedQueryLimit = 512

// formatDBQueryForTrace collapses whitespace so multi-line SQL reads as a
// single span attribute, truncating oversized statements.
func formatDBQueryForTrace(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) > tracedQueryLimit {
		compact = compact[:tracedQueryLimit] + "..."
	}

	return compact
}
