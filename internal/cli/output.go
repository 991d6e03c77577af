package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/model"
)

// Output handles formatting output based on the configured format.
// JSON output uses the same shapes as the HTTP API.
type Output struct {
	w      io.Writer
	format string

	title     lipgloss.Style
	dim       lipgloss.Style
	correct   lipgloss.Style
	partial   lipgloss.Style
	incorrect lipgloss.Style
}

// NewOutput creates a new Output formatter. Colours are only emitted when w
// is a terminal.
func NewOutput(w io.Writer, format string) *Output {
	r := lipgloss.NewRenderer(w)
	return &Output{
		w:         w,
		format:    format,
		title:     r.NewStyle().Bold(true),
		dim:       r.NewStyle().Faint(true),
		correct:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		partial:   r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		incorrect: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.CharacterList:
		o.printCharacterList(v.Characters)
	case response.Character:
		o.printCharacter(v)
	case response.Countdown:
		o.printCountdown(v)
	case response.Selection:
		o.printSelection(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printSession(s response.Session) {
	fmt.Fprintln(o.w, o.title.Render("Mazedle "+s.CurrentDate))

	switch model.Outcome(s.Status) {
	case model.OutcomeInProgress:
		fmt.Fprintf(o.w, "%d of %d guesses left\n", s.RemainingAttempts, s.MaxAttempts)
	case model.OutcomeWon:
		fmt.Fprintf(o.w, "Solved in %d/%d\n", len(s.Guesses), s.MaxAttempts)
	case model.OutcomeLost:
		fmt.Fprintf(o.w, "Lost %d/%d\n", len(s.Guesses), s.MaxAttempts)
	}

	for i, g := range s.Guesses {
		fmt.Fprintf(o.w, "\nGuess %d: %s\n", i+1, o.title.Render(g.Character.Name))
		for _, v := range g.Verdicts {
			fmt.Fprintf(o.w, "  %s %-17s %v\n", o.verdictMark(v.Verdict), v.Label, v.Value)
		}
	}

	if s.Target == nil {
		return
	}
	fmt.Fprintln(o.w)
	switch {
	case s.Status == string(model.OutcomeWon):
		fmt.Fprintf(o.w, "You got it! Today's character was %s.\n", o.correct.Render(s.Target.Name))
	case s.Revealed:
		fmt.Fprintf(o.w, "You gave up. Today's character was %s.\n", o.incorrect.Render(s.Target.Name))
	default:
		fmt.Fprintf(o.w, "Out of guesses. Today's character was %s.\n", o.incorrect.Render(s.Target.Name))
	}
}

func (o *Output) verdictMark(verdict string) string {
	switch model.Verdict(verdict) {
	case model.VerdictCorrect:
		return o.correct.Render("✓")
	case model.VerdictPartial:
		return o.partial.Render("~")
	default:
		return o.incorrect.Render("✗")
	}
}

func (o *Output) printCharacterList(cs []response.Character) {
	if len(cs) == 0 {
		fmt.Fprintln(o.w, o.dim.Render("No matching characters"))
		return
	}
	for _, c := range cs {
		fmt.Fprintf(o.w, "%3d  %s\n", c.ID, c.Name)
	}
}

func (o *Output) printCharacter(c response.Character) {
	fmt.Fprintf(o.w, "%s (#%d)\n", o.title.Render(c.Name), c.ID)
	fmt.Fprintf(o.w, "  %-17s %s\n", "Gender", c.Gender)
	fmt.Fprintf(o.w, "  %-17s %d\n", "Age", c.Age)
	fmt.Fprintf(o.w, "  %-17s %s\n", "First Appearance", c.FirstAppearance)
	fmt.Fprintf(o.w, "  %-17s %s\n", "Role", c.Role)
	fmt.Fprintf(o.w, "  %-17s %s\n", "Group", c.Group)
	fmt.Fprintf(o.w, "  %-17s %s\n", "Status", c.Status)
	fmt.Fprintf(o.w, "  %-17s %s\n", "Survival", c.Survival)
}

func (o *Output) printCountdown(c response.Countdown) {
	fmt.Fprintf(o.w, "Next character in %dh %02dm %02ds\n", c.Hours, c.Minutes, c.Seconds)
}

func (o *Output) printSelection(s response.Selection) {
	fmt.Fprintf(o.w, "Characters used: %d of %d (%d remaining)\n", s.UsedCount, s.TotalCount, s.RemainingCount)
	fmt.Fprintf(o.w, "Cycle started: %s\n", s.LastResetDate)
}
