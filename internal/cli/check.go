package cli

import (
	"fmt"
	"io"

	"github.com/druarnfield/dossier/internal/answers"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <answers.toml>",
		Short: "Validate an answers file without the wizard",
		Long:  "Load an answers file into a fresh form, submit it, and print every field that fails along with the summary.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	ans, err := answers.LoadFromFile(args[0])
	if err != nil {
		return fmt.Errorf("loading answers: %w", err)
	}

	out := cmd.OutOrStdout()
	pr := &printRenderer{w: out}
	sess := form.NewSession(e.catalog, form.WithRenderer(pr), form.WithLogger(e.logger))
	pr.sess = sess

	if err := ans.Apply(sess); err != nil {
		return fmt.Errorf("applying answers: %w", err)
	}

	if _, err := sess.Submit(); err != nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Check failed. Fix the fields above and re-run.")
		return err
	}
	return nil
}

// printRenderer writes the outcome of a headless submission as plain lines.
type printRenderer struct {
	form.NopRenderer

	w    io.Writer
	sess *form.Session
}

func (p *printRenderer) RenderProgress(pr form.Progress) {
	fmt.Fprintf(p.w, "  [%d/%d]  %s\n", pr.Completed, pr.Total, pr.Status())
}

func (p *printRenderer) RenderFieldState(ref form.FieldRef, res form.ValidationResult) {
	if res.Valid {
		return
	}
	fmt.Fprintf(p.w, "  FAILED  %s: %s\n", p.sess.Describe(ref), res.Message)
}

func (p *printRenderer) RenderSubmissionError(err error) {
	fmt.Fprintf(p.w, "\n%v\n", err)
}

func (p *printRenderer) RenderSummary(s form.Summary) {
	fmt.Fprintln(p.w)
	fmt.Fprint(p.w, s.String())
}
