package check

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/interaction-filter/pkg/config"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/interaction"
	"github.com/GoSim-25-26J-441/interaction-filter/pkg/logger"
)

func u32(v uint32) *uint32 { return &v }
func boolp(v bool) *bool { return &v }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		a, b    interaction.Groups
		allowed bool
		tier    Tier
	}{
		{"allowed across groupings", interaction.New(1, 1, 0, 0, 0), interaction.New(1, 1, 0, 0, 1), true, TierNone},
		{"global rejects", interaction.New(1, 1, 0, 0, 0), interaction.New(2, 2, 0, 0, 1), false, TierGlobal},
		{"grouping rejects", interaction.New(0xFF, 0xFF, 1, 2, 1), interaction.New(0xFF, 0xFF, 1, 2, 1), false, TierGrouping},
		{"grouping allows", interaction.New(0xFF, 0xFF, 1, 2, 1), interaction.New(0xFF, 0xFF, 2, 1, 1), true, TierNone},
		{"none rejects globally", interaction.None(), interaction.None(), false, TierGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, tier := Evaluate(tt.a, tt.b)
			if allowed != tt.allowed || tier != tt.tier {
				t.Fatalf("Evaluate = (%v, %q), want (%v, %q)", allowed, tier, tt.allowed, tt.tier)
			}
			if allowed != interaction.Test(tt.a, tt.b) {
				t.Fatalf("Evaluate disagrees with interaction.Test")
			}
		})
	}
}

func TestRun(t *testing.T) {
	cases := []config.Case{
		{
			Name:   "pass",
			A:      config.FilterSpec{Memberships: u32(1), Filter: u32(1), GroupingID: u32(0)},
			B:      config.FilterSpec{Memberships: u32(1), Filter: u32(1), GroupingID: u32(1)},
			Expect: boolp(true),
		},
		{
			Name:   "fail",
			A:      config.FilterSpec{Preset: config.PresetNone},
			B:      config.FilterSpec{},
			Expect: boolp(true),
		},
		{
			Name: "report-only",
			A:    config.FilterSpec{},
			B:    config.FilterSpec{},
		},
	}

	var buf bytes.Buffer
	report, err := Run(context.Background(), cases, logger.New("info", &buf))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Passed != 1 || report.Failed != 1 || report.Unchecked != 1 {
		t.Errorf("unexpected counts: passed=%d failed=%d unchecked=%d", report.Passed, report.Failed, report.Unchecked)
	}
	if report.OK() {
		t.Error("expected report to fail")
	}
	if !strings.HasPrefix(report.RunID, "run-") {
		t.Errorf("unexpected run id %q", report.RunID)
	}

	failed := report.Results[1]
	if failed.Passed || failed.RejectedBy != TierGlobal {
		t.Errorf("unexpected failed result %+v", failed)
	}
	if !report.Results[2].Allowed || !report.Results[2].Passed {
		t.Errorf("expected all/all to be allowed and unchecked")
	}

	output := buf.String()
	if !strings.Contains(output, `"msg":"case failed"`) || !strings.Contains(output, `"rejected_by":"global"`) {
		t.Errorf("expected failure to be logged, got: %s", output)
	}
	if !strings.Contains(output, report.RunID) {
		t.Errorf("expected run id in log output")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	report, err := Run(ctx, []config.Case{{Name: "c1"}}, logger.New("info", &buf))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if report == nil || len(report.Results) != 0 {
		t.Fatalf("expected empty partial report, got %+v", report)
	}
}

func TestRunNilLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.SetDefault(logger.New("info", &buf))

	report, err := Run(context.Background(), []config.Case{{Name: "c1"}}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Results) != 1 {
		t.Fatalf("expected one result")
	}
	if !strings.Contains(buf.String(), "c1") {
		t.Errorf("expected default logger to be used")
	}
}
