package ai

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/peterkuimelis/fmx/internal/game"
	gamelog "github.com/peterkuimelis/fmx/internal/log"
)

// Controller adapts the search engine to the duel loop's player
// interface.
type Controller struct {
	Engine *Engine

	// Moves records the search stats of every move made, in order.
	Moves []SearchStats
}

// NewController wraps an engine as a duel player.
func NewController(e *Engine) *Controller {
	return &Controller{Engine: e}
}

// ChooseAction runs the search for the acting seat and returns its
// move. The first listed action is the fallback if the search comes up
// empty.
func (c *Controller) ChooseAction(ctx context.Context, m *game.MatchState, actions []game.Action) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}

	move, ok := c.Engine.BestMoveFor(m, m.Current)
	c.Moves = append(c.Moves, c.Engine.Stats)
	if !ok {
		log.Warn().Int("seat", m.Current).Msg("search found no move, taking first action")
		return actions[0], nil
	}
	return move, nil
}

// Notify implements the duel player interface. Search players don't
// react to events.
func (c *Controller) Notify(ctx context.Context, event gamelog.GameEvent) error {
	return nil
}
