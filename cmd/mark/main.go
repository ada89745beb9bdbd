// Command mark performs a single term action against the configured API:
// set a status, bump it up or down, or delete the term. It materializes the
// text first so the action runs with the same selection context the reader
// would have.
//
// Flags:
//
//	--tokens    path to the token stream file ("-" for stdin)
//	--terms     path to a JSON file with saved terms (optional)
//	--text-id   numeric id of the text (default 1)
//	--position  position of the word to act on (required)
//	--action    set|up|down|delete (default set)
//	--to        target status for the set action (1-5, 98, 99)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/myreader-engine/internal/app"
	"github.com/heartmarshall/myreader-engine/internal/config"
	"github.com/heartmarshall/myreader-engine/internal/domain"
	"github.com/heartmarshall/myreader-engine/internal/service/wordaction"
	"github.com/heartmarshall/myreader-engine/internal/transport/restapi"
	"github.com/heartmarshall/myreader-engine/pkg/ctxutil"
)

func main() {
	tokensFlag := flag.String("tokens", "-", `path to the token stream file ("-" for stdin)`)
	termsFlag := flag.String("terms", "", "path to a JSON file with saved terms")
	textIDFlag := flag.Int("text-id", 1, "numeric id of the text")
	positionFlag := flag.Int("position", 0, "position of the word to act on")
	actionFlag := flag.String("action", "set", "set|up|down|delete")
	toFlag := flag.Int("to", int(domain.StatusLearning1), "target status for the set action")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	logger.Info("starting mark",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var stream io.Reader = os.Stdin
	if *tokensFlag != "-" {
		f, err := os.Open(*tokensFlag)
		if err != nil {
			logger.Error("open token stream", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		stream = f
	}

	terms, err := app.ReadTerms(*termsFlag)
	if err != nil {
		logger.Error("load terms", slog.String("error", err.Error()))
		os.Exit(1)
	}

	doc, err := app.LoadText(*textIDFlag, stream, terms)
	if err != nil {
		logger.Error("materialize text", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tok, ok := doc.TokenAt(*positionFlag)
	if !ok {
		logger.Error("no word at position", slog.Int("position", *positionFlag))
		os.Exit(1)
	}

	api := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	svc := wordaction.NewService(logger, api, doc, consoleNotifier{log: logger})

	sel := domain.SelectionContext{
		TextID:    doc.TextID(),
		Position:  tok.Position,
		Text:      tok.Text,
		WordCount: tok.WordCount,
		Hex:       tok.Hex,
		Status:    tok.Status,
		WordID:    tok.WordID,
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	reqID := uuid.NewString()
	ctx = ctxutil.WithRequestID(ctx, reqID)

	var res wordaction.Result
	switch *actionFlag {
	case "set":
		res = svc.ChangeStatus(ctx, wordaction.ChangeStatusInput{
			Selection: sel,
			Status:    domain.Status(*toFlag),
		})
	case "up":
		res = svc.IncrementStatus(ctx, wordaction.IncrementInput{Selection: sel, Up: true})
	case "down":
		res = svc.IncrementStatus(ctx, wordaction.IncrementInput{Selection: sel, Up: false})
	case "delete":
		res = svc.DeleteWord(ctx, wordaction.DeleteWordInput{Selection: sel})
	default:
		logger.Error("unknown action", slog.String("action", *actionFlag))
		os.Exit(1)
	}

	if !res.Success {
		logger.Error("action failed",
			slog.String("action", *actionFlag),
			slog.String("term", tok.Text),
			slog.String("error", res.Error),
			slog.String("request_id", reqID),
		)
		os.Exit(1)
	}

	logger.Info("action applied",
		slog.String("action", *actionFlag),
		slog.String("term", tok.Text),
		slog.Int("status", int(res.Status)),
		slog.String("message", res.Message),
		slog.String("request_id", reqID),
	)
}

// consoleNotifier satisfies the action service's notifier with log output;
// there is no reading view to update from a one-shot command.
type consoleNotifier struct {
	log *slog.Logger
}

func (n consoleNotifier) ShowMessage(message string) { n.log.Info(message) }

func (n consoleNotifier) ShowError(message string) { n.log.Error(message) }

func (n consoleNotifier) PlaySound(sound wordaction.Sound) {
	n.log.Debug("sound cue", slog.Int("sound", int(sound)))
}

func (n consoleNotifier) ClosePopup() {}

func (n consoleNotifier) UpdateCounter(delta int) {
	n.log.Debug("counter changed", slog.Int("delta", delta))
}
