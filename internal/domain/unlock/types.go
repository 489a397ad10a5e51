// Package unlock models the entitlement side of the platform: which
// assessments cost credits, what completing one unlocks, and the grants a
// respondent accumulates.  Everything here is pure; persistence and credit
// movement live in the application layer.
package unlock

import "github.com/culturiq/engine/internal/domain/assessment"

// GrantKind distinguishes what a grant entitles the holder to.
type GrantKind string

const (
	GrantAssessment GrantKind = "assessment"
	GrantTool       GrantKind = "tool"
	GrantResource   GrantKind = "resource"
)

// Valid reports whether k is a known grant kind.
func (k GrantKind) Valid() bool {
	switch k {
	case GrantAssessment, GrantTool, GrantResource:
		return true
	}
	return false
}

// Grant is one entitlement held by a respondent.  Key is the assessment type,
// tool id, or resource id depending on Kind.
type Grant struct {
	Kind GrantKind `json:"kind"`
	Key  string    `json:"key"`
}

// Status is the lifecycle of an assessment for one respondent.  Locked means
// the prerequisite has not been completed, Eligible means it may be started
// (spending credits if it costs any), Granted means access has been recorded.
type Status string

const (
	StatusLocked   Status = "locked"
	StatusEligible Status = "eligible"
	StatusGranted  Status = "granted"
)

// GrantSet is the respondent's current entitlements, keyed for O(1) lookup.
type GrantSet map[Grant]struct{}

// NewGrantSet builds a set from a grant slice.
func NewGrantSet(grants []Grant) GrantSet {
	s := make(GrantSet, len(grants))
	for _, g := range grants {
		s[g] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the grant.
func (s GrantSet) Has(g Grant) bool {
	_, ok := s[g]
	return ok
}

// HasAssessment reports whether the respondent holds access to an assessment.
func (s GrantSet) HasAssessment(t assessment.Type) bool {
	return s.Has(Grant{Kind: GrantAssessment, Key: string(t)})
}

// HasTool reports whether the respondent holds access to a tool.
func (s GrantSet) HasTool(id string) bool {
	return s.Has(Grant{Kind: GrantTool, Key: id})
}

// HasResource reports whether the respondent holds access to a resource.
func (s GrantSet) HasResource(id string) bool {
	return s.Has(Grant{Kind: GrantResource, Key: id})
}

// Tool is an interactive tool unlocked by completing an assessment.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    string
	UnlockedBy  assessment.Type
}

// Resource is a downloadable artifact unlocked by completing an assessment.
type Resource struct {
	ID          string
	Title       string
	FullTitle   string
	Description string
	Format      string
	Size        string
	StoragePath string
	Category    string
	UnlockedBy  assessment.Type
}
