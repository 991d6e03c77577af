package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/mazedle-go/internal/api/response"
)

func newSearchCmd(st *state) *cobra.Command {
	var excludeGuessed bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find characters whose name contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var exclude []int
			if excludeGuessed {
				s, err := st.app.SessionController.LoadOrInit(cmd.Context())
				if err != nil {
					return err
				}
				exclude = s.AttemptIDs()
			}

			results := st.app.Roster.Search(args[0], exclude)
			st.out(cmd).Print(response.CharacterList{Characters: response.CharactersFromModel(results)})
			return nil
		},
	}

	cmd.Flags().BoolVar(&excludeGuessed, "exclude-guessed", false, "Hide characters already guessed today")

	return cmd
}

func newRosterCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "roster [id]",
		Short: "List all characters, or show one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, err := st.resolveCharacter(args[0])
				if err != nil {
					return err
				}
				st.out(cmd).Print(response.CharacterFromModel(c))
				return nil
			}

			st.out(cmd).Print(response.CharacterList{Characters: response.CharactersFromModel(st.app.Roster.All())})
			return nil
		},
	}
}
