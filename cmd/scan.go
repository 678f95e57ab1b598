package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/section"
	"github.com/virtualboard/sectionscan/internal/util"
)

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	format := strings.ToLower(flagFormat)
	if format == "" {
		format = section.FormatText
	}
	switch format {
	case section.FormatText, section.FormatTable, section.FormatJSON:
	default:
		return WrapCLIError(ExitCodeValidation, fmt.Errorf("unknown format %s", format))
	}

	res, err := scanInput(opts, args)
	if err != nil {
		return err
	}
	log := opts.Logger().WithField("component", "scan-command")
	log.WithField("path", res.Path).WithField("records", len(res.Records)).Info("scan finished")

	if flagOutput == "" || flagOutput == "-" {
		if opts.JSONOutput {
			return respond(cmd, opts, true, fmt.Sprintf("Found %d sections", len(res.Records)), res)
		}
		return renderReport(cmd.OutOrStdout(), format, res, opts.Scan.Placeholder)
	}

	var buf bytes.Buffer
	if err := renderReport(&buf, format, res, opts.Scan.Placeholder); err != nil {
		return err
	}
	target := flagOutput
	if !filepath.IsAbs(target) {
		target = filepath.Join(opts.RootDir, target)
	}
	if err := util.WriteFileAtomic(target, buf.Bytes(), 0o644); err != nil {
		return WrapCLIError(ExitCodeFilesystem, err)
	}
	log.WithField("output", target).Info("report written")

	message := fmt.Sprintf("Report for %d sections written to %s", len(res.Records), target)
	return respond(cmd, opts, true, message, map[string]interface{}{
		"path":     target,
		"format":   format,
		"sections": len(res.Records),
	})
}

func renderReport(w io.Writer, format string, res section.Result, placeholder string) error {
	switch format {
	case section.FormatTable:
		return section.WriteTable(w, res.Records, placeholder)
	case section.FormatJSON:
		return util.PrintJSON(w, res)
	default:
		return section.WriteText(w, res.Records, placeholder)
	}
}
