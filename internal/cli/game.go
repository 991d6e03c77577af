package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/model"
)

func newTodayCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := st.app.SessionController.LoadOrInit(cmd.Context())
			if err != nil {
				return err
			}
			st.printSession(cmd, s)
			return nil
		},
	}
}

func newGuessCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "guess <name|id>",
		Short: "Guess today's character",
		Long: `Guess today's character by id or by full name (case-insensitive).

Use "mazedle search" to find names.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := st.resolveCharacter(strings.Join(args, " "))
			if err != nil {
				return err
			}

			s, err := st.app.SessionController.Guess(cmd.Context(), c.ID)
			if err != nil {
				return err
			}
			st.printSession(cmd, s)
			return nil
		},
	}
}

func newGiveUpCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "give-up",
		Short: "Reveal today's character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := st.app.SessionController.GiveUp(cmd.Context())
			if err != nil {
				return err
			}
			st.printSession(cmd, s)
			return nil
		},
	}
}

func newRestartCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Start over with a different character for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := st.app.SessionController.Restart(cmd.Context())
			if err != nil {
				return err
			}
			st.printSession(cmd, s)
			return nil
		},
	}
}

// resolveCharacter accepts a numeric id or a full character name
func (st *state) resolveCharacter(arg string) (model.Character, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		c, err := st.app.Roster.Get(id)
		if err != nil {
			return model.Character{}, fmt.Errorf("no character with id %d: %w", id, err)
		}
		return c, nil
	}

	c, err := st.app.Roster.FindByName(arg)
	if err != nil {
		return model.Character{}, fmt.Errorf("no character named %q: %w", arg, err)
	}
	return c, nil
}

// printSession prints the session, followed by the countdown once the game is over
func (st *state) printSession(cmd *cobra.Command, s *model.Session) {
	out := st.out(cmd)
	out.Print(response.SessionFromModel(s, st.app.ComparisonService))

	if s.IsOver() && st.output == "text" {
		fmt.Fprintln(cmd.OutOrStdout())
		out.Print(st.countdown())
	}
}
