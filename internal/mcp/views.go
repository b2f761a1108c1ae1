package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/fmx/internal/ai"
	"github.com/peterkuimelis/fmx/internal/game"
	"github.com/peterkuimelis/fmx/internal/log"
)

// EventView is a simplified game event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// CardView describes one card in a hand.
type CardView struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Level int    `json:"level,omitempty"`
	ATK   int    `json:"atk"`
	DEF   int    `json:"def"`
	Star1 string `json:"star1,omitempty"`
	Star2 string `json:"star2,omitempty"`
}

// FieldView describes a summoned monster with its live battle settings.
type FieldView struct {
	Name   string `json:"name"`
	ATK    int    `json:"atk"`
	DEF    int    `json:"def"`
	Stance string `json:"stance"`
	Star   string `json:"star"`
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Name      string     `json:"name"`
	Life      int        `json:"life"`
	HandCount int        `json:"hand_count"`
	Hand      []CardView `json:"hand,omitempty"` // only for "you"
	Field     *FieldView `json:"field,omitempty"`
	DeckCount int        `json:"deck_count"`
	Graveyard []string   `json:"graveyard,omitempty"`
}

// StateView is the match state from one seat's perspective.
type StateView struct {
	You        PlayerView `json:"you"`
	Opponent   PlayerView `json:"opponent"`
	Turn       int        `json:"turn"`
	Phase      string     `json:"phase"`
	IsYourTurn bool       `json:"is_your_turn"`
}

// SearchView reports what one search decision explored.
type SearchView struct {
	Depth     int     `json:"depth"`
	Nodes     int     `json:"nodes"`
	Prunes    int     `json:"prunes"`
	Score     float64 `json:"score"`
	Shortcut  bool    `json:"shortcut,omitempty"`
	ElapsedMS int64   `json:"elapsed_ms"`
	Move      string  `json:"move"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string       `json:"session_id,omitempty"`
	State     *StateView   `json:"state,omitempty"`
	Actions   []ActionView `json:"actions,omitempty"`
	Events    []EventView  `json:"events"`
	Search    []SearchView `json:"search,omitempty"`
	GameOver  bool         `json:"game_over"`
	Winner    string       `json:"winner,omitempty"`
	Result    string       `json:"result,omitempty"`
}

// BuildStateView creates a StateView from the perspective of the given
// seat. The viewer sees their own hand; the opponent's hand shows as a
// count. Graveyards are open information.
func BuildStateView(m *game.MatchState, seat int) *StateView {
	me := m.Players[seat]
	opp := m.Players[m.Opponent(seat)]

	sv := &StateView{
		Turn:       m.Turn,
		Phase:      m.Phase.String(),
		IsYourTurn: m.Current == seat,
	}

	sv.You = PlayerView{
		Name:      me.Name,
		Life:      me.Life,
		HandCount: len(me.Hand),
		Field:     buildFieldView(me.Field),
		DeckCount: len(me.Deck),
		Graveyard: graveyardNames(me),
	}
	for i, ci := range me.Hand {
		sv.You.Hand = append(sv.You.Hand, CardView{
			Index: i,
			Name:  ci.Card.Name,
			Type:  ci.Card.Type,
			Level: ci.Card.Level,
			ATK:   ci.Card.ATK,
			DEF:   ci.Card.DEF,
			Star1: ci.Card.Star1.String(),
			Star2: ci.Card.Star2.String(),
		})
	}

	sv.Opponent = PlayerView{
		Name:      opp.Name,
		Life:      opp.Life,
		HandCount: len(opp.Hand),
		Field:     buildFieldView(opp.Field),
		DeckCount: len(opp.Deck),
		Graveyard: graveyardNames(opp),
	}

	return sv
}

func buildFieldView(f *game.CardInstance) *FieldView {
	if f == nil {
		return nil
	}
	return &FieldView{
		Name:   f.Card.Name,
		ATK:    f.Card.ATK,
		DEF:    f.Card.DEF,
		Stance: f.Stance.String(),
		Star:   f.ActiveStar.String(),
	}
}

func graveyardNames(p *game.Player) []string {
	var names []string
	for _, ci := range p.Graveyard {
		names = append(names, ci.Card.Name)
	}
	return names
}

func buildActionViews(actions []game.Action) []ActionView {
	views := make([]ActionView, len(actions))
	for i, a := range actions {
		views[i] = ActionView{Index: i, Desc: a.Desc}
	}
	return views
}

func buildEventView(e log.GameEvent) EventView {
	return EventView{
		Turn:    e.Turn,
		Phase:   e.Phase,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

func buildSearchView(st ai.SearchStats, move string) SearchView {
	return SearchView{
		Depth:     st.Depth,
		Nodes:     st.Nodes,
		Prunes:    st.Prunes,
		Score:     st.Score,
		Shortcut:  st.Shortcut,
		ElapsedMS: st.Elapsed.Milliseconds(),
		Move:      move,
	}
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	if resp.Events == nil {
		resp.Events = []EventView{}
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
