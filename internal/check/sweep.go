package check

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/interaction-filter/pkg/config"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/interaction"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/logger"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/utils"
)

// Laws verified by Sweep
const (
	LawSymmetry      = "symmetry"
	LawNoneAbsorbs   = "none-absorbs"
	LawAllPermissive = "all-permissive"
	LawGlobalNarrow  = "grouping-narrows-global"
	LawBinary        = "binary-roundtrip"
	LawProto         = "proto-roundtrip"
)

// maxViolations bounds the number of violations kept in a SweepReport
const maxViolations = 100

// groupingIDs is the range grouping ids are drawn from, kept small so that
// pairs share a grouping often.
const groupingIDs = 4

// Violation records a pair that broke a law
type Violation struct {
	Law string
	A   interaction.Groups
	B   interaction.Groups
}

// SweepReport summarises a Sweep
type SweepReport struct {
	Seed           int64
	Pairs          int
	Allowed        int
	ViolationCount int
	Violations     []Violation // first maxViolations only
	Duration       time.Duration
}

// OK reports whether no law was violated
func (r *SweepReport) OK() bool {
	return r.ViolationCount == 0
}

// Sweep draws params.Pairs random pairs and checks each against the filter
// laws. Violations are collected, not fatal.
func Sweep(ctx context.Context, params config.Sweep, log *slog.Logger) (*SweepReport, error) {
	if log == nil {
		log = logger.Default
	}

	start := time.Now()
	rng := utils.NewRandSource(params.Seed)
	report := &SweepReport{Seed: params.Seed}

	for i := 0; i < params.Pairs; i++ {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}

		a := randomGroups(rng, params.Density)
		b := randomGroups(rng, params.Density)
		report.Pairs++
		if interaction.Test(a, b) {
			report.Allowed++
		}

		for _, law := range checkLaws(a, b) {
			report.ViolationCount++
			if len(report.Violations) < maxViolations {
				report.Violations = append(report.Violations, Violation{Law: law, A: a, B: b})
			}
			log.Debug("law violated", "law", law, "a", a.String(), "b", b.String())
		}
	}

	report.Duration = time.Since(start)
	level := slog.LevelInfo
	if !report.OK() {
		level = slog.LevelError
	}
	log.Log(ctx, level, "sweep complete",
		"seed", report.Seed,
		"pairs", report.Pairs,
		"allowed", report.Allowed,
		"violations", report.ViolationCount,
		"duration", report.Duration)
	return report, nil
}

func randomGroups(rng *utils.RandSource, density float64) interaction.Groups {
	return interaction.New(
		rng.Mask(density),
		rng.Mask(density),
		rng.Mask(density),
		rng.Mask(density),
		uint32(rng.Intn(groupingIDs)),
	)
}

// checkLaws returns the laws the pair violates.
func checkLaws(a, b interaction.Groups) []string {
	var broken []string

	allowed := interaction.Test(a, b)
	if allowed != interaction.Test(b, a) {
		broken = append(broken, LawSymmetry)
	}

	none := interaction.None()
	if interaction.Test(a, none) || interaction.Test(none, a) {
		broken = append(broken, LawNoneAbsorbs)
	}

	all := interaction.All()
	wantAll := a.Filter != 0 && a.Memberships != 0 &&
		(a.GroupingID != all.GroupingID || (a.GroupingFilter != 0 && a.GroupingMemberships != 0))
	if interaction.Test(all, a) != wantAll {
		broken = append(broken, LawAllPermissive)
	}

	if allowed && !interaction.GlobalTest(a, b) {
		broken = append(broken, LawGlobalNarrow)
	}

	var decoded interaction.Groups
	raw, err := a.MarshalBinary()
	if err != nil || decoded.UnmarshalBinary(raw) != nil || decoded != a || decoded.Hash() != a.Hash() {
		broken = append(broken, LawBinary)
	}

	decoded = interaction.Groups{}
	if err := decoded.UnmarshalProto(a.AppendProto(nil)); err != nil || decoded != a {
		broken = append(broken, LawProto)
	}

	return broken
}
