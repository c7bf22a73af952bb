// internal/fs/fs.go
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"taskboard/internal/card"
)

const StateFileName = "state.json"

type AppState struct {
	FocusedColumn int `json:"focused_column"`
	FocusedCard   int `json:"focused_card"`
}

// LoadCards reads the initial cards from path. SQLite databases are picked by
// extension; anything else is read as YAML (which also covers JSON). A missing
// card file yields the sample board.
func LoadCards(ctx context.Context, path string) ([]card.Card, error) {
	if isSQLite(path) {
		return loadSQLite(ctx, path)
	}
	return loadFile(path)
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func loadFile(path string) ([]card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("card file not found, using sample board")
			return SampleCards(), nil
		}
		return nil, fmt.Errorf("fs.LoadCards: %w", err)
	}

	cards, err := ParseCards(data)
	if err != nil {
		return nil, fmt.Errorf("fs.LoadCards %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("cards", len(cards)).Msg("cards loaded")
	return cards, nil
}

// ParseCards decodes a YAML or JSON list of cards. Cards without an id get a
// generated one.
func ParseCards(data []byte) ([]card.Card, error) {
	var cards []card.Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = uuid.New().String()
		}
	}
	return cards, nil
}

func statePath(dir string) string {
	return filepath.Join(dir, StateFileName)
}

func SaveState(dir string, state AppState) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath(dir), data, 0644)
}

func LoadState(dir string) (AppState, error) {
	data, err := os.ReadFile(statePath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return AppState{}, nil
		}
		return AppState{}, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{}, err
	}
	return state, nil
}
