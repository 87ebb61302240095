package config

import "github.com/GoSim-25-26J-441/interaction-filter/pkg/interaction"

// Filter presets accepted by FilterSpec.Preset
const (
	PresetAll  = "all"
	PresetNone = "none"
)

// Defaults applied before validation
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultSweepDensity = 0.5
)

// Config represents a pair-check run
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // text or json
	Sweep     *Sweep `yaml:"sweep,omitempty"`
	Cases     []Case `yaml:"cases"`
}

// Case is one explicit pair to evaluate
type Case struct {
	Name   string     `yaml:"name"`
	A      FilterSpec `yaml:"a"`
	B      FilterSpec `yaml:"b"`
	Expect *bool      `yaml:"expect,omitempty"` // nil: report only
}

// FilterSpec describes an interaction filter as a preset plus field overrides.
// Masks may be written in decimal or hex (0xFF).
type FilterSpec struct {
	Preset              string  `yaml:"preset,omitempty"` // all (default) or none
	Memberships         *uint32 `yaml:"memberships,omitempty"`
	Filter              *uint32 `yaml:"filter,omitempty"`
	GroupingMemberships *uint32 `yaml:"grouping_memberships,omitempty"`
	GroupingFilter      *uint32 `yaml:"grouping_filter,omitempty"`
	GroupingID          *uint32 `yaml:"grouping_id,omitempty"`
}

// Sweep configures the randomized law check
type Sweep struct {
	Pairs   int     `yaml:"pairs"`
	Seed    int64   `yaml:"seed"`    // 0 seeds from the clock
	Density float64 `yaml:"density"` // per-bit probability; 0 selects DefaultSweepDensity
}

// Enabled reports whether the sweep should run
func (s *Sweep) Enabled() bool {
	return s != nil && s.Pairs > 0
}

// Groups resolves f into a filter value
func (f FilterSpec) Groups() interaction.Groups {
	g := interaction.All()
	if f.Preset == PresetNone {
		g = interaction.None()
	}
	if f.Memberships != nil {
		g = g.WithMemberships(*f.Memberships)
	}
	if f.Filter != nil {
		g = g.WithFilter(*f.Filter)
	}
	if f.GroupingMemberships != nil {
		g = g.WithGroupingMemberships(*f.GroupingMemberships)
	}
	if f.GroupingFilter != nil {
		g = g.WithGroupingFilter(*f.GroupingFilter)
	}
	if f.GroupingID != nil {
		g = g.WithGroupingID(*f.GroupingID)
	}
	return g
}
