package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"bigtwo/internal/app"
	"bigtwo/internal/bot"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "deal seed, 0 picks a random one")
	playersFlag := flag.Int("players", 4, "number of seats to fill (2-4)")
	configFlag := flag.String("config", "", "optional game config JSON path")
	hintsFlag := flag.Bool("hints", false, "show the advisor's ranked hints before every move")
	flag.Parse()

	if *playersFlag < app.MinPlayersToStartGame || *playersFlag > app.MaxPlayers {
		fmt.Fprintf(os.Stderr, "usage: %s [-seed N] [-players 2-4] [-config path]\n", os.Args[0])
		os.Exit(1)
	}

	if *configFlag != "" {
		if err := config.LoadGameConfig(*configFlag); err != nil {
			pterm.Warning.Printfln("Config not loaded: %v", err)
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ig ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("wo", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Info.Printfln("Seed: %d", seed)

	if err := run(seed, *playersFlag, *hintsFlag); err != nil {
		pterm.Error.Printfln("Game failed: %v", err)
		os.Exit(1)
	}
}

// run deals one full round between bots and renders every move.
func run(seed int64, players int, showHints bool) error {
	svc := app.NewService(rand.New(rand.NewSource(seed)), config.GetScoringRules())

	userIDs := make([]string, players)
	agents := make(map[string]*bot.Agent, players)
	for seat := 0; seat < players; seat++ {
		userID := bot.BotUserID(seat)
		level := bot.BotLevelGreedy
		if seat%2 == 1 {
			level = bot.BotLevelHolding
		}
		agent, err := bot.NewAgent(userID, level)
		if err != nil {
			return err
		}
		userIDs[seat] = userID
		agents[userID] = agent
	}

	game, events, err := svc.StartGame(userIDs)
	if err != nil {
		return err
	}
	renderEvents(game, events)

	for game.Phase == domain.PhasePlaying {
		seat := game.CurrentTurn
		agent := agents[game.PlayerAtSeat(seat).UserID]

		if showHints {
			renderHints(svc, game, seat)
		}

		move, err := agent.Play(game)
		if err != nil {
			return err
		}

		if move.Pass {
			events, err = svc.PassTurn(game, seat)
		} else {
			events, err = svc.PlayCards(game, seat, move.Cards)
		}
		if err != nil {
			return fmt.Errorf("seat %d move rejected: %w", seat, err)
		}
		renderEvents(game, events)
	}

	return nil
}

func renderEvents(game *domain.Game, events []app.Event) {
	for _, ev := range events {
		switch payload := ev.Payload.(type) {
		case app.GameStartedPayload:
			pterm.Info.Printfln("Game %s started, seat %d leads with the %s",
				payload.GameID, payload.FirstTurnSeat, domain.LowestCard)
		case app.HandDealtPayload:
			pterm.Printfln("%s %s", seatTag(payload.Seat), formatCards(payload.Hand))
		case app.CardPlayedPayload:
			pterm.Printfln("%s plays %s  %s", seatTag(payload.Seat),
				pterm.LightCyan(payload.PlayType), formatCards(payload.Cards))
		case app.TurnPassedPayload:
			pterm.Printfln("%s passes", seatTag(payload.Seat))
		case app.RoundResetPayload:
			pterm.Printfln("%s leads a new round", seatTag(payload.LeaderSeat))
		case app.GameEndedPayload:
			renderScores(payload)
		}
	}
}

func renderHints(svc *app.Service, game *domain.Game, seat int) {
	hints, _, pass, err := svc.Hints(game, seat)
	if err != nil {
		return
	}
	if pass {
		pterm.Printfln("%s %s", seatTag(seat), pterm.Gray("no legal play"))
		return
	}
	for _, h := range hints {
		pterm.Printfln("%s %s", seatTag(seat), pterm.Gray(h.Description))
	}
}

func renderScores(payload app.GameEndedPayload) {
	pterm.Println()
	rows := pterm.TableData{{"Position", "Seat", "Player", "Cards left", "Score", "Complex"}}
	for _, line := range payload.Scores {
		rows = append(rows, []string{
			strconv.Itoa(line.Position),
			strconv.Itoa(line.Seat),
			line.UserID,
			strconv.Itoa(line.CardsLeft),
			strconv.Itoa(line.Score),
			strconv.Itoa(line.ComplexScore),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(rows).Render()
}

func seatTag(seat int) string {
	return pterm.Gray(fmt.Sprintf("[seat %d]", seat))
}

func formatCards(cards []domain.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
