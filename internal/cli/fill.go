package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/dossier/internal/answers"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/wizard"
	"github.com/spf13/cobra"
)

func newFillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in the form interactively",
		Long:  "Open the form wizard. With --answers, fields start out filled from a TOML answers file.",
		Args:  cobra.NoArgs,
		RunE:  runFill,
	}
	cmd.Flags().StringVar(&flagAnswers, "answers", "", "Prefill fields from a TOML answers file")
	return cmd
}

func runFill(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	view := wizard.NewView()
	sess := form.NewSession(e.catalog, form.WithRenderer(view), form.WithLogger(e.logger))

	if flagAnswers != "" {
		ans, err := answers.LoadFromFile(flagAnswers)
		if err != nil {
			return fmt.Errorf("loading answers: %w", err)
		}
		if err := ans.Apply(sess); err != nil {
			return fmt.Errorf("applying answers: %w", err)
		}
	}

	m := wizard.New(sess, view, wizard.Options{
		Title:        e.cfg.Form.Title,
		RemovalDelay: e.cfg.RemovalDelay(),
		ShowHelp:     e.cfg.UI.ShowHelp,
		Logger:       e.logger,
	})

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	out := cmd.OutOrStdout()
	if w, ok := final.(wizard.WizardModel); ok && w.Submitted() {
		fmt.Fprint(out, w.Summary().String())
		return nil
	}
	fmt.Fprintln(out, "Form closed without submitting.")
	return nil
}
