package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/advisor"
	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
	"bigtwo/internal/ports"
)

// Label is the queryable match label kept current as seats fill and the
// phase changes.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// PlayCardsRequest is the client payload for OpPlayCards.
type PlayCardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

// HintsResponse answers an OpRequestHints privately.
type HintsResponse struct {
	Hints      []advisor.Hint `json:"hints"`
	AutoPlay   []domain.Card  `json:"auto_play"`
	ShouldPass bool           `json:"should_pass"`
}

// GameErrorPayload is sent privately when a request is rejected.
type GameErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type playerJoinedPayload struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type playerLeftPayload struct {
	UserID string `json:"user_id"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler.
type MatchState struct {
	Seats     [4]string
	OwnerSeat int
	Tick      int64

	Presences map[string]runtime.Presence
	App       *app.Service
	Game      *domain.Game
	Bots      map[string]*bot.Agent

	BotsEnabled          bool
	BotMinDelay          int
	BotMaxDelay          int
	BotAutoFillDelay     int
	BotWaitUntil         int64
	LastSinglePlayerTick int64

	// TurnSecondsRemaining counts down at the 1Hz tick rate; at zero the
	// current human player's turn is forced.
	TurnDuration         int
	TurnSecondsRemaining int64
	LastTurnSeat         int

	Scoreboard ports.ScoreboardPort
}

func (ms *MatchState) OpenSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) OccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) HumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat index occupied by the user or -1.
func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserID := range ms.Seats {
		if seatUserID == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1
// if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	gameCfg := config.GetGameConfig()

	state := &MatchState{
		OwnerSeat:        -1,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil, config.GetScoringRules()),
		Bots:             make(map[string]*bot.Agent),
		BotAutoFillDelay: gameCfg.BotAutoFillDelaySeconds,
		TurnDuration:     gameCfg.TurnDurationSeconds,
		LastTurnSeat:     -1,
		Scoreboard:       NewNakamaScoreboardAdapter(nk),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["bigtwo_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["bigtwo_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["bigtwo_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["bigtwo_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(Label{Open: true, Game: "bigtwo", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat or, before the game starts, a
	// bot that can be replaced.
	if matchState.OpenSeatCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match_full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.seatOf(p.GetUserId()) >= 0 {
			continue // rejoin, seat kept
		}

		assigned := -1
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = i
				break
			}
		}

		if assigned < 0 && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = i
					break
				}
			}
		}

		if assigned < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		payload, _ := json.Marshal(playerJoinedPayload{
			UserID: p.GetUserId(),
			Seat:   assigned,
			Owner:  matchState.OwnerSeat == assigned,
		})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, payload, nil, nil, true)
	}

	// The owner seat must belong to a human player.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if seat := matchState.seatOf(p.GetUserId()); seat >= 0 {
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)

			payload, _ := json.Marshal(playerLeftPayload{UserID: p.GetUserId()})
			_ = dispatcher.BroadcastMessage(OpPlayerLeft, payload, nil, nil, true)
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if matchState.OwnerSeat == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(ctx, matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(ctx, matchState, dispatcher, logger, msg)
		case OpRequestHints:
			mh.handleRequestHints(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	mh.processTurnTimer(ctx, matchState, dispatcher, logger)

	return matchState
}

// processTurnTimer counts a human player's turn down and forces the weakest
// legal play (or a pass) when the clock runs out. Bot turns run on their own
// delay and are exempt.
func (mh *matchHandler) processTurnTimer(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.TurnDuration <= 0 || state.Game == nil || state.Game.Phase != domain.PhasePlaying {
		state.LastTurnSeat = -1
		return
	}

	seat := state.Game.CurrentTurn
	if seat != state.LastTurnSeat {
		state.LastTurnSeat = seat
		state.TurnSecondsRemaining = int64(state.TurnDuration)
		return
	}
	if bot.IsBot(state.Seats[seat]) {
		return
	}

	state.TurnSecondsRemaining--
	if state.TurnSecondsRemaining > 0 {
		return
	}
	state.TurnSecondsRemaining = int64(state.TurnDuration)

	_, suggestion, pass, err := state.App.Hints(state.Game, seat)
	if err != nil {
		logger.Error("processTurnTimer: Hints failed for seat %d: %v", seat, err)
		return
	}

	logger.Info("processTurnTimer: Seat %d timed out, forcing a move (pass=%t).", seat, pass)

	var events []app.Event
	if pass {
		events, err = state.App.PassTurn(state.Game, seat)
	} else {
		events, err = state.App.PlayCards(state.Game, seat, suggestion)
		if err != nil {
			// The suggestion can be illegal when it would strand a lone
			// spade; passing is always accepted on a responded table.
			events, err = state.App.PassTurn(state.Game, seat)
		}
	}
	if err != nil {
		logger.Error("processTurnTimer: Forced move for seat %d rejected: %v", seat, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.OccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner can start the game")
		return
	}
	if state.Game != nil {
		logger.Warn("StartGame: Game already in progress.")
		return
	}

	game, events, err := state.App.StartGame(state.Seats[:])
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.Game = game
	mh.updateLabel(state, dispatcher, logger)

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}

	logger.Info("StartGame: Game %s started with %d players.", game.ID, game.PlayerCount())
}

func (mh *matchHandler) handlePlayCards(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handlePlayCards: Game not started.")
		return
	}

	var request PlayCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal request: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	events, err := state.App.PlayCards(state.Game, senderSeat, request.Cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) failed to play cards: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePassTurn(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handlePassTurn: Game not started.")
		return
	}

	events, err := state.App.PassTurn(state.Game, senderSeat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) failed to pass turn: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handleRequestHints(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handleRequestHints: Game not started.")
		return
	}

	hints, suggestion, pass, err := state.App.Hints(state.Game, senderSeat)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	response := HintsResponse{Hints: hints, AutoPlay: suggestion, ShouldPass: pass}
	payload, err := json.Marshal(response)
	if err != nil {
		logger.Error("handleRequestHints: Failed to marshal response: %v", err)
		return
	}

	presence, ok := state.Presences[senderID]
	if !ok {
		return
	}
	_ = dispatcher.BroadcastMessage(OpHints, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when one human has been waiting alone.
	if state.Game == nil {
		if state.HumanPlayerCount() == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					botID := bot.BotUserID(i)
					agent, err := bot.NewAgent(botID, bot.BotLevelHolding)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", botID, err)
						continue
					}
					state.Seats[i] = botID
					state.Bots[botID] = agent

					payload, _ := json.Marshal(playerJoinedPayload{UserID: botID, Seat: i})
					_ = dispatcher.BroadcastMessage(OpPlayerJoined, payload, nil, nil, true)

					logger.Info("processBots: Added bot %s to seat %d", botID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Drive bot turns with a small human-like delay.
	if state.Game.Phase != domain.PhasePlaying {
		return
	}
	currentTurn := state.Game.CurrentTurn
	currentUserID := state.Seats[currentTurn]

	if !bot.IsBot(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d", currentUserID, currentTurn, state.BotWaitUntil)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(currentUserID, bot.BotLevelGreedy)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[currentUserID] = agent
	}

	move, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", currentUserID, err)
		return
	}

	var events []app.Event
	if move.Pass {
		events, err = state.App.PassTurn(state.Game, currentTurn)
	} else {
		events, err = state.App.PlayCards(state.Game, currentTurn, move.Cards)
	}
	if err != nil {
		logger.Error("processBots: Bot %s move rejected: %v", currentUserID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent converts an app event to its opcode and dispatches it,
// honoring targeted recipients.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64

	switch ev.Kind {
	case app.EventGameStarted:
		opCode = OpGameStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventCardPlayed:
		opCode = OpCardPlayed
	case app.EventTurnPassed:
		opCode = OpTurnPassed
	case app.EventRoundReset:
		opCode = OpRoundReset
	case app.EventGameEnded:
		opCode = OpGameEnded
		p := ev.Payload.(app.GameEndedPayload)
		mh.submitScores(ctx, state, logger, p)
		// Back to the lobby for the next round.
		state.Game = nil
		for _, player := range state.Bots {
			player.OnGameEvent(p)
		}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// Targeted events with no connected recipients (bot hands) must not
		// fall back to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	_ = dispatcher.BroadcastMessage(opCode, payload, recipients, nil, true)

	if ev.Kind == app.EventGameEnded {
		mh.updateLabel(state, dispatcher, logger)
	}
}

// submitScores publishes the complex-score totals of human players to the
// leaderboard.
func (mh *matchHandler) submitScores(ctx context.Context, state *MatchState, logger runtime.Logger, payload app.GameEndedPayload) {
	if state.Scoreboard == nil {
		return
	}

	simple := config.GetScoringPolicy() == config.PolicySimple

	entries := make([]ports.ScoreEntry, 0, len(payload.Scores))
	for _, line := range payload.Scores {
		if bot.IsBot(line.UserID) {
			continue
		}
		score := int64(line.ComplexScore)
		if simple {
			score = int64(line.Score)
		}
		entries = append(entries, ports.ScoreEntry{
			UserID: line.UserID,
			Score:  score,
		})
	}
	if len(entries) == 0 {
		return
	}

	if err := state.Scoreboard.SubmitScores(ctx, payload.GameID, entries); err != nil {
		logger.Error("Failed to submit scores: %v", err)
	}
}

// sendError delivers a GameErrorPayload to a single user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload, err := json.Marshal(GameErrorPayload{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal error payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: presence not found", userID)
		return
	}

	_ = dispatcher.BroadcastMessage(OpGameError, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}

	labelBytes, err := json.Marshal(Label{
		Open:  state.OpenSeatCount() > 0 && state.Game == nil,
		Game:  "bigtwo",
		Phase: phase,
	})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}
