package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/fmx/internal/game"
)

// RegisterTools adds all duel tools to the MCP server.
func (v *Service) RegisterTools(s *server.MCPServer) {
	s.AddTool(startDuelTool(), v.handleStartDuel)
	s.AddTool(getStateTool(), v.handleGetState)
	s.AddTool(legalActionsTool(), v.handleLegalActions)
	s.AddTool(playCardTool(), v.handlePlayCard)
	s.AddTool(fuseCardsTool(), v.handleFuseCards)
	s.AddTool(undoPlayTool(), v.handleUndoPlay)
	s.AddTool(passTurnTool(), v.handlePassTurn)
	s.AddTool(aiMoveTool(), v.handleAIMove)
}

// --- Tool definitions ---

func startDuelTool() mcp.Tool {
	return mcp.NewTool("start_duel",
		mcp.WithDescription("Start a new duel against the built-in opponent. You play seat 0. "+
			"Returns a session_id to pass to every other tool, plus the opening state."),
		mcp.WithString("difficulty", mcp.Description("Opponent search depth: easy, normal, hard, or expert (default normal)")),
		mcp.WithString("profile", mcp.Description("Opponent evaluation profile: default, aggressive, or cautious")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for a reproducible deal (0 or omitted for random)")),
		mcp.WithNumber("deck_size", mcp.Description("Cards dealt per deck, 10-40 (default 20)")),
		mcp.WithNumber("deck", mcp.Description("Your deck number (1-indexed) from the server's decks file")),
		mcp.WithNumber("opponent_deck", mcp.Description("Opponent deck number (1-indexed) from the server's decks file")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current duel state and any events since the last call. Read-only."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
	)
}

func legalActionsTool() mcp.Tool {
	return mcp.NewTool("legal_actions",
		mcp.WithDescription("List everything you can do right now: each summon option (card, stance, guardian star), "+
			"each workable fusion, and pass."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Summon a card from your hand to your field. Once per turn; undo_play takes it back "+
			"before the turn ends."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
		mcp.WithNumber("hand_index", mcp.Required(), mcp.Description("0-based index of the hand card to summon")),
		mcp.WithString("stance", mcp.Description("'attack' or 'defense' (default attack)")),
		mcp.WithNumber("star", mcp.Description("Guardian star slot to fight under: 1 or 2 (default 1)")),
	)
}

func fuseCardsTool() mcp.Tool {
	return mcp.NewTool("fuse_cards",
		mcp.WithDescription("Fuse two hand cards. A successful fusion puts the result back in your hand, so it can "+
			"chain into further fusions or be summoned this turn. A pair with no recipe just fails."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
		mcp.WithNumber("first", mcp.Required(), mcp.Description("0-based hand index of the first material")),
		mcp.WithNumber("second", mcp.Required(), mcp.Description("0-based hand index of the second material")),
	)
}

func undoPlayTool() mcp.Tool {
	return mcp.NewTool("undo_play",
		mcp.WithDescription("Take back the monster summoned this turn, returning it to your hand. A tribute paid "+
			"for it comes back too."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
	)
}

func passTurnTool() mcp.Tool {
	return mcp.NewTool("pass_turn",
		mcp.WithDescription("End your turn. If both fields hold a monster, yours attacks first; then the opponent "+
			"draws. Call ai_move next to let them act."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
	)
}

func aiMoveTool() mcp.Tool {
	return mcp.NewTool("ai_move",
		mcp.WithDescription("Let the opponent take its whole turn: fusions, a summon or pass, and combat. Returns "+
			"the events plus search diagnostics for each decision."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID from start_duel")),
	)
}

// --- Tool handlers ---

func (v *Service) handleStartDuel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := duelParams{
		difficulty: request.GetString("difficulty", ""),
		profile:    request.GetString("profile", ""),
		seed:       int64(request.GetInt("seed", 0)),
		deckSize:   request.GetInt("deck_size", 0),
		deckNum:    request.GetInt("deck", 0),
		oppDeckNum: request.GetInt("opponent_deck", 0),
	}

	sess, err := v.startSession(p)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start duel: %v", err), nil
	}

	resp, err := sess.legalActions()
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.state())), nil
}

func (v *Service) handleLegalActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}
	resp, err := sess.legalActions()
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}

	index := request.GetInt("hand_index", -1)
	stance := game.ParseStance(request.GetString("stance", "attack"))
	star := request.GetInt("star", 1)

	resp, err := sess.playCard(index, stance, star)
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handleFuseCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}

	first := request.GetInt("first", -1)
	second := request.GetInt("second", -1)

	resp, err := sess.fuseCards(first, second)
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handleUndoPlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}
	resp, err := sess.undoPlay()
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handlePassTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}
	resp, err := sess.passTurn()
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (v *Service) handleAIMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, ok := v.session(request.GetString("session_id", ""))
	if !ok {
		return mcp.NewToolResultError("Unknown session_id. Use start_duel first."), nil
	}
	resp, err := sess.machineMove()
	if err != nil {
		return mcp.NewToolResultErrorf("%v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
