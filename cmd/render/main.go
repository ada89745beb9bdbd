// Command render materializes a tokenized text and prints its reading-view
// markup. It runs the offline pipeline end to end: token stream in, saved
// terms and annotations applied, HTML out on stdout.
//
// Flags:
//
//	--tokens       path to the token stream file ("-" for stdin)
//	--terms        path to a JSON file with saved terms (optional)
//	--annotations  path to a JSON file with annotations (optional)
//	--text-id      numeric id of the text (default 1)
//	--delims       translation delimiter characters (default ",;/|")
//	--show-all     render expressions as constituent-count placeholders
//	--log-level    debug|info|warn|error (default info)
//	--log-format   json|text (default text)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/myreader-engine/internal/app"
	"github.com/heartmarshall/myreader-engine/internal/config"
	"github.com/heartmarshall/myreader-engine/internal/render"
)

func main() {
	tokensFlag := flag.String("tokens", "-", `path to the token stream file ("-" for stdin)`)
	termsFlag := flag.String("terms", "", "path to a JSON file with saved terms")
	annotationsFlag := flag.String("annotations", "", "path to a JSON file with annotations")
	textIDFlag := flag.Int("text-id", 1, "numeric id of the text")
	delimsFlag := flag.String("delims", ",;/|", "translation delimiter characters")
	showAllFlag := flag.Bool("show-all", false, "render expressions as constituent-count placeholders")
	logLevelFlag := flag.String("log-level", "info", "debug|info|warn|error")
	logFormatFlag := flag.String("log-format", "text", "json|text")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: *logLevelFlag, Format: *logFormatFlag})

	logger.Debug("starting render", slog.String("version", app.BuildVersion()))

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

	anns, err := app.ReadAnnotations(*annotationsFlag)
	if err != nil {
		logger.Error("load annotations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	doc, err := app.LoadText(*textIDFlag, stream, terms)
	if err != nil {
		logger.Error("materialize text", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(app.RenderHTML(doc, anns, *delimsFlag, render.Settings{ShowAll: *showAllFlag}))

	logger.Info("rendered text",
		slog.Int("text_id", *textIDFlag),
		slog.Int("tokens", doc.Len()),
		slog.Int("chars", doc.TotalChars()),
	)
}
