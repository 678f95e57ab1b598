package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/virtualboard/sectionscan/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sectionscan version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}

			v := version.String()
			if opts.JSONOutput {
				return respond(cmd, opts, true, "version", map[string]string{
					"version": v,
					"go":      runtime.Version(),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sectionscan %s (%s)\n", v, runtime.Version())
			return nil
		},
	}
}
