package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"taskboard/internal/board"
	"taskboard/internal/card"
	"taskboard/internal/column"
	"taskboard/internal/config"
	"taskboard/internal/fs"
	"taskboard/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	cards, err := fs.LoadCards(context.Background(), cfg.Source.Path)
	if err != nil {
		return fmt.Errorf("could not load cards: %w", err)
	}

	store, err := board.NewStore(cards)
	if err != nil {
		return fmt.Errorf("could not build board: %w", err)
	}
	store.Subscribe(func(cards []card.Card) {
		counts := make(map[column.ID]int)
		for _, c := range cards {
			counts[c.Column]++
		}
		ev := log.Debug()
		for _, col := range column.All() {
			ev = ev.Int(string(col), counts[col])
		}
		ev.Msg("board changed")
	})

	state, err := fs.LoadState(cfg.State.Dir)
	if err != nil {
		// Non-fatal, we can continue with defaults
		log.Warn().Err(err).Msg("could not load state")
	}

	model := tui.NewModel(store, tui.Options{
		Input:         cfg.Input.Mode,
		TouchDrop:     cfg.Input.TouchDrop,
		CardWidth:     cfg.View.CardWidth,
		StatusTTL:     cfg.View.StatusTTL,
		FocusedColumn: state.FocusedColumn,
		FocusedCard:   state.FocusedCard,
	})

	log.Info().
		Str("source", cfg.Source.Path).
		Int("cards", store.Len()).
		Str("input", string(cfg.Input.Mode)).
		Msg("starting board")

	p := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(*tui.Model); ok {
		err := fs.SaveState(cfg.State.Dir, fs.AppState{
			FocusedColumn: m.FocusedColumn(),
			FocusedCard:   m.FocusedCard(),
		})
		if err != nil {
			return fmt.Errorf("could not save state: %w", err)
		}
	}
	return nil
}

// setupLogging points the global logger at the configured file. The terminal
// belongs to the board, so without a file logs are discarded.
func setupLogging(cfg config.LogConfig) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}
