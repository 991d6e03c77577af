package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/mazedle-go/internal/api/response"
)

func newCountdownCmd(st *state) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show the time until the next character",
		Long: `Show the time until the next character.

With --follow the countdown is reprinted every second until interrupted,
and a notice is printed when the new day begins. Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := st.out(cmd)
			out.Print(st.countdown())
			if !follow {
				return nil
			}

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()

			day := st.app.Calendar.Today()
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					if today := st.app.Calendar.Today(); today != day {
						day = today
						out.PrintMessage("A new character is available for " + today)
					}
					out.Print(st.countdown())
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing every second")

	return cmd
}

func (st *state) countdown() response.Countdown {
	c := st.app.Calendar.UntilReset()
	return response.Countdown{
		Hours:     c.Hours,
		Minutes:   c.Minutes,
		Seconds:   c.Seconds,
		NextReset: st.app.Calendar.NextReset().Format(time.RFC3339),
	}
}
