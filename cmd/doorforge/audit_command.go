package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"doorforge/internal/audit"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Verify catalog image references against the optimized image tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			db, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			report, err := audit.New(cfg.Paths.OptimizedDir, logger).Run(db)
			if err != nil {
				return err
			}

			if jsonOut {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else {
				renderAuditReport(cmd, report)
			}

			if !report.Clean() {
				return fmt.Errorf("audit found %d missing files and %d width mismatches",
					len(report.Missing), len(report.WidthMismatches))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the audit report as JSON")
	return cmd
}

func renderAuditReport(cmd *cobra.Command, report audit.Report) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, renderStatusLine("Products", statusInfo, fmt.Sprintf("%d", report.Products), colorize))
	fmt.Fprintln(out, renderStatusLine("References", statusInfo, fmt.Sprintf("%d", report.References), colorize))

	missingKind := statusOK
	if len(report.Missing) > 0 {
		missingKind = statusError
	}
	fmt.Fprintln(out, renderStatusLine("Missing files", missingKind, fmt.Sprintf("%d", len(report.Missing)), colorize))

	mismatchKind := statusOK
	if len(report.WidthMismatches) > 0 {
		mismatchKind = statusWarn
	}
	fmt.Fprintln(out, renderStatusLine("Width mismatches", mismatchKind, fmt.Sprintf("%d", len(report.WidthMismatches)), colorize))

	for _, ref := range report.Missing {
		fmt.Fprintf(out, "  missing: %s (%s)\n", ref.Path, ref.ProductSlug)
	}
	for _, ref := range report.WidthMismatches {
		fmt.Fprintf(out, "  width: %s declared %d actual %d (%s)\n",
			ref.Path, ref.DeclaredWidth, ref.ActualWidth, ref.ProductSlug)
	}
}
