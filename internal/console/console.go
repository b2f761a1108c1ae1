package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterkuimelis/fmx/internal/game"
	"github.com/peterkuimelis/fmx/internal/log"
)

// Controller plays one seat from a terminal. It renders the board
// before each choice and reads a numbered pick from the reader.
type Controller struct {
	Seat int
	in   *bufio.Reader
	out  io.Writer
}

// New creates a terminal controller for the given seat.
func New(seat int, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		Seat: seat,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// ChooseAction renders the board and the numbered actions, then blocks
// until the player picks one.
func (c *Controller) ChooseAction(ctx context.Context, m *game.MatchState, actions []game.Action) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}

	c.renderBoard(m)
	c.renderActions(actions)

	idx, err := c.readChoice(len(actions))
	if err != nil {
		return game.Action{}, err
	}
	return actions[idx], nil
}

// Notify implements the duel player interface. Events reach the
// terminal through the duel's text logger instead.
func (c *Controller) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

func (c *Controller) renderBoard(m *game.MatchState) {
	you := m.Players[c.Seat]
	opp := m.Players[m.Opponent(c.Seat)]

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	fmt.Fprintf(c.out, "║  %s (LP %d)  Hand: %d  Deck: %d  Graveyard: %d\n",
		opp.Name, opp.Life, len(opp.Hand), len(opp.Deck), len(opp.Graveyard))
	fmt.Fprintf(c.out, "║  Field:  %s\n", formatField(opp.Field))
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  Field:  %s\n", formatField(you.Field))
	fmt.Fprintf(c.out, "║  %s (LP %d)  Hand: %d  Deck: %d  Graveyard: %d\n",
		you.Name, you.Life, len(you.Hand), len(you.Deck), len(you.Graveyard))
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")

	turnInfo := fmt.Sprintf("Turn %d | %s", m.Turn, m.Phase)
	if m.Current == c.Seat {
		turnInfo += " | Your turn"
	} else {
		turnInfo += " | Opponent's turn"
	}
	fmt.Fprintln(c.out, turnInfo)

	if len(you.Hand) > 0 {
		fmt.Fprintf(c.out, "\nHand: ")
		for i, ci := range you.Hand {
			fmt.Fprintf(c.out, "[%d] %s (%d/%d)  ", i+1, ci.Card.Name, ci.Card.ATK, ci.Card.DEF)
		}
		fmt.Fprintln(c.out)
	}
}

func formatField(f *game.CardInstance) string {
	if f == nil {
		return "[ ]"
	}
	if f.Stance == game.StanceDefense {
		return fmt.Sprintf("[%s DEF/%d under %s]", f.Card.Name, f.Card.DEF, f.ActiveStar)
	}
	return fmt.Sprintf("[%s ATK/%d under %s]", f.Card.Name, f.Card.ATK, f.ActiveStar)
}

func (c *Controller) renderActions(actions []game.Action) {
	fmt.Fprintln(c.out, "\nActions:")
	for i, a := range actions {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, a.Desc)
	}
}

func (c *Controller) readChoice(count int) (int, error) {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("read choice: %w", err)
		}
		line = strings.TrimSpace(line)
		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > count {
			fmt.Fprintf(c.out, "Enter a number between 1 and %d\n", count)
			if err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			continue
		}
		return n - 1, nil
	}
}
