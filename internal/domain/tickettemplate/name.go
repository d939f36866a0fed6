package tickettemplate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SystemScope is the owner scope of templates that belong to nobody.
const SystemScope = "_system"

var folder = cases.Fold()

// FoldName returns the uniqueness key for a template name: trimmed, NFKC
// normalized and case folded, so "Bug Report", "bug report" and "ＢＵＧ REPORT"
// collide.
func FoldName(name string) string {
	return folder.String(norm.NFKC.String(strings.TrimSpace(name)))
}

// ScopeFor maps a creator ID to its owner scope. Nil is the system scope.
func ScopeFor(createdBy *string) string {
	if createdBy == nil {
		return SystemScope
	}
	return *createdBy
}
