package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mazedle-go/internal/api/response"
)

func newSelectionCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selection",
		Short: "Inspect or reset the character rotation",
	}

	cmd.AddCommand(newSelectionInfoCmd(st))
	cmd.AddCommand(newSelectionResetCmd(st))

	return cmd
}

func newSelectionInfoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show how many characters have been used this cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.printSelection(cmd)
		},
	}
}

func newSelectionResetCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new rotation cycle",
		Long: `Start a new rotation cycle so every character is available again.
Today's game is not affected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.app.SelectionEngine.Reset(cmd.Context()); err != nil {
				return err
			}
			return st.printSelection(cmd)
		},
	}
}

func (st *state) printSelection(cmd *cobra.Command) error {
	info, err := st.app.SelectionEngine.Info(cmd.Context())
	if err != nil {
		return err
	}
	st.out(cmd).Print(response.SelectionFromModel(info))
	return nil
}
