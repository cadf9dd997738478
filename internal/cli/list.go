package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cardwall/internal/roster"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [roster]",
		Short: "List the records in a roster",
		Long: `List roster records without rendering.

With --format json the full records are emitted; text mode prints one
summary line per record in display order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runList(rootOpts, path, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	records, errs := roster.Load(path, roster.LoadModeFailFast)
	if len(errs) > 0 {
		code := codeOf(errs[0])
		formatter.Error(code, errs[0].Error(), nil)
		exit := ExitFailure
		if isCommandError(code) {
			exit = ExitCommandError
		}
		return NewExitError(exit, errs[0].Error())
	}

	if opts.Format == "json" {
		return formatter.Success(records)
	}

	for _, rec := range records {
		status := "-"
		if rec.Status != nil {
			status = *rec.Status
		}
		fmt.Fprintf(formatter.Writer, "%-4d %-24s age %-3d %-10s [%s]\n",
			rec.ID, rec.Name, rec.Age, status, strings.Join(rec.Skills, ", "))
	}
	return nil
}
