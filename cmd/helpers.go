package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/config"
	"github.com/virtualboard/sectionscan/internal/section"
	"github.com/virtualboard/sectionscan/internal/util"
)

// options prefers the Options stored in the command context by the root PersistentPreRunE.
func options(cmd *cobra.Command) (*config.Options, error) {
	if ctx := cmd.Context(); ctx != nil {
		return config.FromContext(ctx)
	}
	return config.Current()
}

func respond(cmd *cobra.Command, opts *config.Options, success bool, message string, data interface{}) error {
	if opts.JSONOutput {
		payload := util.StructuredResult(success, message, data)
		return util.PrintJSON(cmd.OutOrStdout(), payload)
	}
	if message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), message)
	}
	return nil
}

// scanInput scans the file named by args (or the configured default) and maps read failures to exit codes.
func scanInput(opts *config.Options, args []string) (section.Result, error) {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	path := opts.InputPath(name)

	res, err := section.NewScanner(opts).ScanFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return section.Result{}, WrapCLIError(ExitCodeNotFound, err)
		}
		return section.Result{}, WrapCLIError(ExitCodeFilesystem, err)
	}
	return res, nil
}
