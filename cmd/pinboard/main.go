package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evanharte/pinboard/internal/cli"
	"github.com/evanharte/pinboard/internal/db"
	"github.com/evanharte/pinboard/internal/engine"
	"github.com/evanharte/pinboard/internal/store"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pinboard/pinboard.db
	dbPath := os.Getenv("PINBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pinboard", "pinboard.db")
	}

	boardID := os.Getenv("PINBOARD_BOARD")
	if boardID == "" {
		boardID = "default"
	}
	actorID := os.Getenv("PINBOARD_USER")
	if actorID == "" {
		actorID = "cli"
	}

	log := newLogger()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Boards:      store.NewBoardService(database, engine.NewLogObserver(log)),
		Log:         log,
		BoardID:     boardID,
		ActorUserID: actorID,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds the process logger: human-readable on a terminal,
// JSON lines otherwise. Level comes from PINBOARD_LOG (default warn, so
// normal CLI output stays clean).
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if s := os.Getenv("PINBOARD_LOG"); s != "" {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}

	var log zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
