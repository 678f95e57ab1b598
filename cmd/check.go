package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/section"
	"github.com/virtualboard/sectionscan/internal/util"
)

func newCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Verify section line ranges are ordered and every section closes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			res, err := scanInput(opts, args)
			if err != nil {
				return err
			}
			report := section.Check(res, opts.Scan.Placeholder)
			failed := report.Failed(strict)

			opts.Logger().WithField("component", "check-command").WithFields(logrus.Fields{
				"errors":   report.Errors,
				"warnings": report.Warnings,
				"strict":   strict,
			}).Info("check finished")

			summary := fmt.Sprintf("Checked %d sections: %d errors, %d warnings", report.Sections, report.Errors, report.Warnings)

			if opts.JSONOutput {
				if err := respond(cmd, opts, !failed, summary, report); err != nil {
					return err
				}
			} else {
				lines := make([]string, 0, len(report.Findings)+1)
				for _, f := range report.Findings {
					lines = append(lines, fmt.Sprintf("line %d [%s] %s: %s", f.Line, f.Severity, f.Section, f.Message))
				}
				lines = append(lines, summary)
				if err := util.PrintLines(cmd.OutOrStdout(), lines...); err != nil {
					return WrapCLIError(ExitCodeFilesystem, err)
				}
			}

			if failed {
				return NewCLIError(ExitCodeValidation, "check failed for "+res.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	return cmd
}
