package policy

import (
	"testing"

	"github.com/Ananya-1041/Prerana/app/models"
)

func TestScopeFor(t *testing.T) {
	tests := []struct {
		name string
		kind models.ResourceKind
		want models.ResourceFilter
	}{
		{name: "materials pinned to class", kind: models.KindStudyMaterial, want: models.ResourceFilter{Class: "9"}},
		{name: "timetable pinned to class", kind: models.KindTimetable, want: models.ResourceFilter{Class: "9"}},
		{name: "papers unscoped", kind: models.KindQuestionPaper, want: models.ResourceFilter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScopeFor(tt.kind, "9"); got != tt.want {
				t.Errorf("ScopeFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		name      string
		scope     models.ResourceFilter
		requested models.ResourceFilter
		want      models.ResourceFilter
	}{
		{
			name:  "no filters keeps scope",
			scope: models.ResourceFilter{Class: "9"},
			want:  models.ResourceFilter{Class: "9"},
		},
		{
			name:      "All sentinel disables every predicate",
			requested: models.ResourceFilter{Class: "All", Subject: "All", Year: "All"},
			want:      models.ResourceFilter{},
		},
		{
			name:      "subject and year narrow",
			scope:     models.ResourceFilter{Class: "9"},
			requested: models.ResourceFilter{Subject: "Math", Year: "2024"},
			want:      models.ResourceFilter{Class: "9", Subject: "Math", Year: "2024"},
		},
		{
			name:      "explicit class narrows an unscoped kind",
			requested: models.ResourceFilter{Class: "10"},
			want:      models.ResourceFilter{Class: "10"},
		},
		{
			name:      "matching class keeps a pinned scope",
			scope:     models.ResourceFilter{Class: "9"},
			requested: models.ResourceFilter{Class: "9"},
			want:      models.ResourceFilter{Class: "9"},
		},
		{
			name:      "conflicting class never escapes the scope",
			scope:     models.ResourceFilter{Class: "9"},
			requested: models.ResourceFilter{Class: "10"},
			want:      models.ResourceFilter{Class: "10", Empty: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Narrow(tt.scope, tt.requested); got != tt.want {
				t.Errorf("Narrow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplies(t *testing.T) {
	if Applies("") || Applies(FilterAll) {
		t.Error("empty and All must not constrain")
	}
	if !Applies("9") {
		t.Error("a concrete value must constrain")
	}
}
