package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardwall/internal/roster"
)

// ValidationResult holds validation results for a roster.
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Records int               `json:"records"`
	Errors  []ValidationIssue `json:"errors,omitempty"`
}

// ValidationIssue is one reported problem.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <roster>",
		Short: "Validate a roster without rendering",
		Long: `Validate a roster file or CUE directory without rendering.

Checks record shape and roster invariants (unique ids, required fields)
and reports every problem found. Faster feedback than a full render when
editing roster files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	records, errs := roster.Load(path, roster.LoadModeCollectAll)
	if len(errs) == 0 {
		formatter.VerboseLog("Loaded %d record(s) from %s", len(records), path)
		if opts.Format == "json" {
			return formatter.Success(ValidationResult{Valid: true, Records: len(records)})
		}
		return formatter.Success(fmt.Sprintf("✓ Roster valid (%d record(s))", len(records)))
	}

	// A command error (unreadable path, unparseable file) is reported on
	// its own; validation failures are collected into one result.
	firstCode := codeOf(errs[0])
	if isCommandError(firstCode) {
		formatter.Error(firstCode, errs[0].Error(), nil)
		return NewExitError(ExitCommandError, errs[0].Error())
	}

	result := ValidationResult{Valid: false, Records: len(records)}
	for _, err := range errs {
		result.Errors = append(result.Errors, ValidationIssue{
			Code:    codeOf(err),
			Message: err.Error(),
		})
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "✗ Roster invalid: %d error(s)\n", len(result.Errors))
		for _, issue := range result.Errors {
			fmt.Fprintf(formatter.Writer, "  [%s] %s\n", issue.Code, issue.Message)
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("roster invalid: %d error(s)", len(result.Errors)))
}
