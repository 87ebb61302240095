package interaction

import "fmt"

// Groups is a pairwise interaction filter.
//
// The global fields (Memberships, Filter) are tested for every pair. The
// grouping fields (GroupingMemberships, GroupingFilter) are tested in
// addition only when both sides carry the same GroupingID.
//
// Field order is the binary layout order; see AppendBinary.
type Groups struct {
	// Memberships is the set of groups this entity belongs to.
	Memberships uint32 `yaml:"memberships" json:"memberships"`
	// Filter is the set of groups this entity interacts with.
	Filter uint32 `yaml:"filter" json:"filter"`
	// GroupingMemberships is the set of sub-groups this entity belongs to
	// within its grouping.
	GroupingMemberships uint32 `yaml:"grouping_memberships" json:"grouping_memberships"`
	// GroupingFilter is the set of sub-groups this entity interacts with
	// within its grouping.
	GroupingFilter uint32 `yaml:"grouping_filter" json:"grouping_filter"`
	// GroupingID names the grouping the two fields above are scoped to.
	GroupingID uint32 `yaml:"grouping_id" json:"grouping_id"`
}

// New creates a filter from explicit field values. Every combination is valid.
func New(memberships, filter, groupingMemberships, groupingFilter, groupingID uint32) Groups {
	return Groups{
		Memberships:         memberships,
		Filter:              filter,
		GroupingMemberships: groupingMemberships,
		GroupingFilter:      groupingFilter,
		GroupingID:          groupingID,
	}
}

// All returns a filter that interacts with everything that accepts it.
func All() Groups {
	return New(GroupAll, GroupAll, GroupAll, GroupAll, GroupAll)
}

// None returns a filter that interacts with nothing, itself included.
func None() Groups {
	return New(GroupNone, GroupNone, GroupNone, GroupNone, GroupNone)
}

// Default returns the filter used when a caller specifies none. It equals All.
func Default() Groups {
	return All()
}

// WithMemberships returns a copy of g with Memberships replaced.
func (g Groups) WithMemberships(memberships uint32) Groups {
	g.Memberships = memberships
	return g
}

// WithFilter returns a copy of g with Filter replaced.
func (g Groups) WithFilter(filter uint32) Groups {
	g.Filter = filter
	return g
}

// WithGroupingMemberships returns a copy of g with GroupingMemberships replaced.
func (g Groups) WithGroupingMemberships(memberships uint32) Groups {
	g.GroupingMemberships = memberships
	return g
}

// WithGroupingFilter returns a copy of g with GroupingFilter replaced.
func (g Groups) WithGroupingFilter(filter uint32) Groups {
	g.GroupingFilter = filter
	return g
}

// WithGroupingID returns a copy of g with GroupingID replaced.
func (g Groups) WithGroupingID(id uint32) Groups {
	g.GroupingID = id
	return g
}

// Test reports whether g and other are allowed to interact.
func (g Groups) Test(other Groups) bool {
	return Test(g, other)
}

// Test reports whether a and b are allowed to interact.
//
// The global test must always pass. When both sides share a GroupingID the
// grouping test must pass as well; it narrows the global result and never
// replaces it.
func Test(a, b Groups) bool {
	return GlobalTest(a, b) && (a.GroupingID != b.GroupingID || GroupingTest(a, b))
}

// GlobalTest reports whether each side's Memberships intersects the other
// side's Filter.
func GlobalTest(a, b Groups) bool {
	return a.Memberships&b.Filter != 0 && b.Memberships&a.Filter != 0
}

// GroupingTest is GlobalTest over the grouping-scoped fields. It ignores
// GroupingID.
func GroupingTest(a, b Groups) bool {
	return a.GroupingMemberships&b.GroupingFilter != 0 && b.GroupingMemberships&a.GroupingFilter != 0
}

func (g Groups) String() string {
	return fmt.Sprintf("Groups{memberships=%#x filter=%#x grouping_memberships=%#x grouping_filter=%#x grouping_id=%#x}",
		g.Memberships, g.Filter, g.GroupingMemberships, g.GroupingFilter, g.GroupingID)
}
