package mcp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/fmx/internal/ai"
	"github.com/peterkuimelis/fmx/internal/game"
	"github.com/peterkuimelis/fmx/internal/log"
)

// seatClient is the seat the MCP client plays. The search opponent
// holds the other one.
const seatClient = game.SeatHuman

// Service owns the duel sessions exposed over MCP.
type Service struct {
	catalog   *game.Catalog
	decksFile string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates a service dealing duels from the given catalog.
// decksFile may be empty; fixed-deck starts then refuse.
func NewService(cat *game.Catalog, decksFile string) *Service {
	if cat == nil {
		cat = game.DefaultCatalog()
	}
	return &Service{
		catalog:   cat,
		decksFile: decksFile,
		sessions:  make(map[string]*Session),
	}
}

// Session is a single duel driven tool call by tool call. The client
// summons, fuses, and passes for its seat; the opposing seat moves
// when ai_move is called.
type Session struct {
	ID string

	mu     sync.Mutex
	match  *game.MatchState
	engine *ai.Engine
	logger *log.MemoryLogger

	// played marks a summon this turn that may still be taken back.
	played bool
	// cursor is how many log events have been delivered already.
	cursor int
}

type duelParams struct {
	difficulty string
	profile    string
	seed       int64
	deckSize   int
	deckNum    int
	oppDeckNum int
}

// startSession deals a fresh duel and registers it under a new ID.
func (v *Service) startSession(p duelParams) (*Session, error) {
	depth, ok := ai.DepthByName(p.difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", p.difficulty)
	}
	weights, ok := ai.WeightsByName(p.profile)
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", p.profile)
	}

	var opts []game.MatchOption
	if p.seed != 0 {
		opts = append(opts, game.WithSeed(p.seed))
	}
	if p.deckSize != 0 {
		opts = append(opts, game.WithDeckSize(p.deckSize))
	}

	if p.deckNum != 0 || p.oppDeckNum != 0 {
		if v.decksFile == "" {
			return nil, fmt.Errorf("no decks file configured, start the server with one to use numbered decks")
		}
		if p.deckNum == 0 || p.oppDeckNum == 0 {
			return nil, fmt.Errorf("deck and opponent_deck must be given together")
		}
		_, yours, err := game.DeckByNumber(v.decksFile, v.catalog, p.deckNum)
		if err != nil {
			return nil, fmt.Errorf("load deck: %w", err)
		}
		_, theirs, err := game.DeckByNumber(v.decksFile, v.catalog, p.oppDeckNum)
		if err != nil {
			return nil, fmt.Errorf("load opponent deck: %w", err)
		}
		opts = append(opts, game.WithDecks(yours, theirs))
	}

	sess := &Session{
		ID:     uuid.NewString(),
		match:  game.NewMatch(v.catalog, opts...),
		engine: ai.NewEngine(depth, weights),
		logger: log.NewMemoryLogger(),
	}
	sess.logger.Log(log.NewTurnEvent(sess.match.Turn, sess.match.Current))

	v.mu.Lock()
	v.sessions[sess.ID] = sess
	v.mu.Unlock()

	return sess, nil
}

// session looks up a session by ID.
func (v *Service) session(id string) (*Session, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.sessions[id]
	return s, ok
}

// newEvents returns the log events not yet delivered to the client.
func (s *Session) newEvents() []EventView {
	events := s.logger.Events()
	var views []EventView
	for _, e := range events[s.cursor:] {
		views = append(views, buildEventView(e))
	}
	s.cursor = len(events)
	return views
}

// response builds the standard envelope: current state, undelivered
// events, and the outcome when the duel is over.
func (s *Session) response() *ToolResponse {
	m := s.match
	resp := &ToolResponse{
		SessionID: s.ID,
		State:     BuildStateView(m, seatClient),
		Events:    s.newEvents(),
	}
	if m.Over {
		resp.GameOver = true
		resp.Winner = winnerLabel(m.Winner)
		resp.Result = m.Result
	}
	return resp
}

func winnerLabel(winner int) string {
	switch winner {
	case seatClient:
		return "you"
	case game.SeatAI:
		return "opponent"
	default:
		return "tie"
	}
}

// guard rejects mutating calls once the duel is over or while the
// opposing seat still has to move.
func (s *Session) guard() error {
	if s.match.Over {
		return fmt.Errorf("the duel is over: %s", s.match.Result)
	}
	if s.match.Current != seatClient {
		return fmt.Errorf("the opponent is moving, call ai_move")
	}
	return nil
}

// legalActions lists the client's current choices.
func (s *Session) legalActions() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := s.response()
	if s.match.Over {
		return resp, nil
	}
	if s.match.Current != seatClient {
		return nil, fmt.Errorf("the opponent is moving, call ai_move")
	}
	resp.Actions = buildActionViews(s.match.LegalActions(seatClient))
	return resp, nil
}

// state returns the current view without acting.
func (s *Session) state() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response()
}

// playCard summons a hand card to the client's field.
func (s *Session) playCard(index int, stance game.Stance, star int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(); err != nil {
		return nil, err
	}
	m := s.match
	p := m.Players[seatClient]

	if index < 0 || index >= len(p.Hand) {
		return nil, fmt.Errorf("hand index %d out of range, hand has %d cards", index, len(p.Hand))
	}
	if s.played {
		return nil, fmt.Errorf("already summoned this turn, undo_play to take it back")
	}
	if p.Field != nil {
		return nil, fmt.Errorf("%s already holds your field", p.Field.Card.Name)
	}
	if star != 1 && star != 2 {
		return nil, fmt.Errorf("star must be 1 or 2")
	}

	if !p.PlayToField(index, stance, star) {
		return nil, fmt.Errorf("that card cannot be played")
	}
	s.played = true

	f := p.Field
	s.logger.Log(log.NewSummonEvent(m.Turn, m.Phase.String(), seatClient, f.Card.Name, f.Card.ATK, f.Stance.String(), f.ActiveStar.String()))

	return s.response(), nil
}

// fuseCards combines two hand cards. A pair with no recipe is a normal
// outcome, reported through a fusion-failed event.
func (s *Session) fuseCards(first, second int) (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(); err != nil {
		return nil, err
	}
	m := s.match
	p := m.Players[seatClient]

	if first < 0 || first >= len(p.Hand) || second < 0 || second >= len(p.Hand) {
		return nil, fmt.Errorf("hand indices out of range, hand has %d cards", len(p.Hand))
	}
	if first == second {
		return nil, fmt.Errorf("pick two different cards")
	}

	nameA := p.Hand[first].Card.Name
	nameB := p.Hand[second].Card.Name

	result := p.Combine(first, second)
	if result == nil {
		s.logger.Log(log.NewFusionFailEvent(m.Turn, m.Phase.String(), seatClient, nameA, nameB))
		return s.response(), nil
	}

	s.logger.Log(log.NewFusionEvent(m.Turn, m.Phase.String(), seatClient, nameA, nameB, result.Name, result.ATK))
	return s.response(), nil
}

// undoPlay takes back the monster summoned this turn.
func (s *Session) undoPlay() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(); err != nil {
		return nil, err
	}
	if !s.played {
		return nil, fmt.Errorf("nothing to take back this turn")
	}

	m := s.match
	p := m.Players[seatClient]
	name := p.Field.Card.Name
	if !p.UndoPlay() {
		return nil, fmt.Errorf("nothing to take back this turn")
	}
	s.played = false

	s.logger.Log(log.NewUndoEvent(m.Turn, m.Phase.String(), seatClient, name))
	return s.response(), nil
}

// passTurn ends the client's main phase: combat resolves if both
// fields are occupied, then play passes to the opposing seat.
func (s *Session) passTurn() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.guard(); err != nil {
		return nil, err
	}
	m := s.match

	s.logger.Log(log.NewPassEvent(m.Turn, m.Phase.String(), seatClient))
	s.runBattle(seatClient)
	if m.Over {
		s.logOutcome()
		return s.response(), nil
	}

	s.advanceTurn()
	s.played = false
	return s.response(), nil
}

// machineMove plays out the opposing seat's whole turn: fusions, a
// summon or pass, combat, and the hand-off back to the client.
func (s *Session) machineMove() (*ToolResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.match
	if m.Over {
		return nil, fmt.Errorf("the duel is over: %s", m.Result)
	}
	if m.Current != game.SeatAI {
		return nil, fmt.Errorf("it is your turn")
	}

	var searches []SearchView
	for !m.Over {
		actions := m.LegalActions(game.SeatAI)
		if len(actions) == 0 {
			break
		}
		move, ok := s.engine.BestMove(m)
		if !ok {
			move = actions[0]
		}
		searches = append(searches, buildSearchView(s.engine.Stats, move.Desc))

		// Name the second material before Combine splices the hand.
		var matB string
		if move.Type == game.ActionFuse {
			hand := m.Players[game.SeatAI].Hand
			if move.FuseB >= 0 && move.FuseB < len(hand) {
				matB = hand[move.FuseB].Card.Name
			}
		}
		if !m.ApplyAction(move) {
			break
		}

		if move.Type == game.ActionFuse {
			hand := m.Players[game.SeatAI].Hand
			result := hand[len(hand)-1]
			s.logger.Log(log.NewFusionEvent(m.Turn, m.Phase.String(), game.SeatAI, move.Card, matB, result.Card.Name, result.Card.ATK))
			continue
		}
		if move.Type == game.ActionSummon {
			f := m.Players[game.SeatAI].Field
			s.logger.Log(log.NewSummonEvent(m.Turn, m.Phase.String(), game.SeatAI, f.Card.Name, f.Card.ATK, f.Stance.String(), f.ActiveStar.String()))
		} else {
			s.logger.Log(log.NewPassEvent(m.Turn, m.Phase.String(), game.SeatAI))
		}
		break
	}

	if !m.Over {
		s.runBattle(game.SeatAI)
	}
	if m.Over {
		s.logOutcome()
	} else {
		s.advanceTurn()
	}

	resp := s.response()
	resp.Search = searches
	return resp, nil
}

// runBattle resolves one round of combat with the given seat attacking
// and logs what happened. Nothing happens unless both fields are
// occupied.
func (s *Session) runBattle(attacker int) {
	m := s.match
	defender := m.Opponent(attacker)

	att := m.Players[attacker].Field
	def := m.Players[defender].Field
	if att == nil || def == nil {
		return
	}

	m.Phase = game.PhaseBattle
	s.logger.Log(log.NewPhaseChangeEvent(m.Turn, m.Phase.String()))
	s.logger.Log(log.NewAttackDeclareEvent(m.Turn, attacker, att.Card.Name, def.Card.Name))

	rec := m.ResolveBattle(attacker)
	if rec == nil {
		return
	}

	s.logger.Log(log.NewDamageCalcEvent(m.Turn, attacker, rec.Description))
	if rec.AttackerDestroyed {
		s.logger.Log(log.NewBattleDestroyEvent(m.Turn, attacker, rec.AttackerCard))
	}
	if rec.DefenderDestroyed {
		s.logger.Log(log.NewBattleDestroyEvent(m.Turn, defender, rec.DefenderCard))
	}
	if rec.Damage > 0 && rec.DamagedSeat >= 0 {
		lp := m.Players[rec.DamagedSeat].Life
		s.logger.Log(log.NewLifeChangeEvent(m.Turn, m.Phase.String(), rec.DamagedSeat, lp+rec.Damage, lp, "battle damage"))
	}
}

// advanceTurn hands play to the other seat and logs the turn and draw.
func (s *Session) advanceTurn() {
	m := s.match
	card, drew := m.NextTurn()
	s.logger.Log(log.NewTurnEvent(m.Turn, m.Current))
	if drew {
		s.logger.Log(log.NewDrawEvent(m.Turn, game.PhaseDraw.String(), m.Current, card.Card.Name))
	}
	m.CheckGameOver()
	if m.Over {
		s.logOutcome()
	}
}

// logOutcome emits the final win or tie event once.
func (s *Session) logOutcome() {
	m := s.match
	if !m.Over || s.outcomeLogged() {
		return
	}
	if m.Winner >= 0 {
		reason := m.Result
		if i := strings.Index(reason, ": "); i >= 0 {
			reason = reason[i+2:]
		}
		s.logger.Log(log.NewWinEvent(m.Turn, m.Phase.String(), m.Winner, reason))
	} else {
		s.logger.Log(log.NewTieEvent(m.Turn, m.Phase.String(), m.Result))
	}
}

func (s *Session) outcomeLogged() bool {
	last := s.logger.LastEvent()
	return last.Type == log.EventWin || last.Type == log.EventTie
}
