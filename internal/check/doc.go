// Package check evaluates interaction filter pairs described in a
// configuration file.
//
// Run evaluates explicit cases and compares them against their expected
// outcome. Sweep draws random pairs from a seeded source and verifies the
// algebraic laws the filter must obey (symmetry, absorption by the empty
// filter, permissiveness of the full filter, stable encodings).
//
// Usage:
//
//	cfg, err := config.LoadConfig("config/groupcheck.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := check.Run(ctx, cfg.Cases, logger.Default)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.OK() {
//	    os.Exit(1)
//	}
package check
