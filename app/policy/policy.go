// Package policy decides which catalog records a principal may see.
// It is pure: filters go in, filters come out, nothing touches storage.
package policy

import "github.com/Ananya-1041/Prerana/app/models"

// FilterAll is the sentinel query value that disables a predicate.
const FilterAll = "All"

// Applies reports whether a query value actually constrains a field.
func Applies(v string) bool {
	return v != "" && v != FilterAll
}

// ScopeFor returns the base visibility filter for a student in the given
// class. Study materials and timetables are pinned to the student's exact
// class. Question papers are deliberately unscoped: every student sees
// every class's papers unless they filter explicitly.
func ScopeFor(kind models.ResourceKind, class string) models.ResourceFilter {
	switch kind {
	case models.KindQuestionPaper:
		return models.ResourceFilter{}
	default:
		return models.ResourceFilter{Class: class}
	}
}

// Narrow applies a request's optional filters on top of a scope. Subject
// and year narrow by equality. A requested class narrows too, but can
// never widen a scope that already pins one: asking for a different class
// than the pinned one yields the empty set.
func Narrow(scope, requested models.ResourceFilter) models.ResourceFilter {
	out := scope
	if Applies(requested.Subject) {
		out.Subject = requested.Subject
	}
	if Applies(requested.Year) {
		out.Year = requested.Year
	}
	if Applies(requested.Class) {
		if out.Class != "" && out.Class != requested.Class {
			out.Empty = true
		}
		out.Class = requested.Class
	}
	return out
}
