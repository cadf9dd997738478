package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"cardwall/internal/dom"
	"cardwall/internal/locale"
	"cardwall/internal/render"
	"cardwall/internal/roster"
)

// RenderSummary describes the outcome of a render command.
type RenderSummary struct {
	RunToken  string `json:"run_token"`
	Records   int    `json:"records"`
	Cards     int    `json:"cards"`
	Container string `json:"container"`
	Skipped   bool   `json:"skipped,omitempty"`
	Output    string `json:"output,omitempty"`
	HTML      string `json:"html,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pagePath    string
		outPath     string
		containerID string
		localeTag   string
	)

	cmd := &cobra.Command{
		Use:   "render [roster]",
		Short: "Render a roster into HTML cards",
		Long: `Render person records into card elements appended to a container.

The roster argument is a .yaml file or a directory of CUE files; with no
argument the embedded demo roster is rendered. Cards are appended to the
element with the --container id inside the --page host document (a blank
page is generated when --page is omitted).

A host page without the container element is not an error: the page is
emitted unchanged and no cards are produced.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(rootOpts, cmd, renderInputs{
				rosterPath:  path,
				pagePath:    pagePath,
				outPath:     outPath,
				containerID: containerID,
				localeTag:   localeTag,
			})
		},
	}

	cmd.Flags().StringVar(&pagePath, "page", "", "host HTML page (default: generated blank page)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&containerID, "container", "cards", "id of the container element")
	cmd.Flags().StringVar(&localeTag, "locale", "en", "display locale for birthdates")

	return cmd
}

type renderInputs struct {
	rosterPath  string
	pagePath    string
	outPath     string
	containerID string
	localeTag   string
}

func runRender(opts *RootOptions, cmd *cobra.Command, in renderInputs) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting output
		Verbose:   opts.Verbose,
	}

	records, loadErrs := roster.Load(in.rosterPath, roster.LoadModeFailFast)
	if len(loadErrs) > 0 {
		code := codeOf(loadErrs[0])
		formatter.Error(code, loadErrs[0].Error(), nil)
		exit := ExitFailure
		if isCommandError(code) {
			exit = ExitCommandError
		}
		return NewExitError(exit, loadErrs[0].Error())
	}
	formatter.VerboseLog("Loaded %d record(s)", len(records))

	dateFmt, err := locale.NewFormatter(in.localeTag)
	if err != nil {
		formatter.Error(ErrCodeBadLocale, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid locale", err)
	}

	page, err := loadPage(in.pagePath, in.containerID)
	if err != nil {
		formatter.Error(ErrCodeBadPage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading host page", err)
	}

	container := dom.FindByID(page, in.containerID)
	if container == nil {
		formatter.VerboseLog("container #%s not found; nothing to render", in.containerID)
	}

	renderer := render.New(render.WithFormatter(dateFmt))
	report := renderer.Render(records, container)

	pageBytes, err := dom.RenderBytes(page)
	if err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "serializing page", err)
	}

	summary := RenderSummary{
		RunToken:  report.RunToken,
		Records:   len(records),
		Cards:     report.Cards,
		Container: in.containerID,
		Skipped:   report.Skipped,
		Output:    in.outPath,
	}

	if in.outPath != "" {
		if err := os.WriteFile(in.outPath, pageBytes, 0644); err != nil {
			formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", in.outPath, err), nil)
			return WrapExitError(ExitCommandError, "writing output", err)
		}
		if opts.Format == "json" {
			return formatter.Success(summary)
		}
		return formatter.Success(fmt.Sprintf("Rendered %d card(s) into #%s -> %s", report.Cards, in.containerID, in.outPath))
	}

	// No output file: the page itself is the product. In JSON mode the
	// page travels inside the response so stdout stays valid JSON.
	if opts.Format == "json" {
		summary.HTML = string(pageBytes)
		return formatter.Success(summary)
	}
	if _, err := formatter.Writer.Write(pageBytes); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}
	fmt.Fprintln(formatter.Writer)
	formatter.VerboseLog("Rendered %d card(s) into #%s (run %s)", report.Cards, in.containerID, report.RunToken)
	return nil
}

// loadPage reads and parses the host page, or builds a blank one when no
// path is given.
func loadPage(path, containerID string) (*html.Node, error) {
	if path == "" {
		return dom.BlankPage(containerID), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading host page: %w", err)
	}
	return dom.ParseBytes(data)
}
