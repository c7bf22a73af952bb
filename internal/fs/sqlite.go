package fs

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"taskboard/internal/card"
	"taskboard/internal/column"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT,
	column_id   TEXT NOT NULL,
	priority    INTEGER NOT NULL DEFAULT 1,
	comments    INTEGER NOT NULL DEFAULT 0,
	files       INTEGER NOT NULL DEFAULT 0,
	position    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS card_images (
	card_id  TEXT NOT NULL REFERENCES cards(id),
	position INTEGER NOT NULL,
	image    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS card_assignees (
	card_id  TEXT NOT NULL REFERENCES cards(id),
	position INTEGER NOT NULL,
	avatar   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_position ON cards(position);
`

// loadSQLite reads cards from the database at path. An empty database gets
// the schema and the sample board.
func loadSQLite(ctx context.Context, path string) ([]card.Card, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("fs.LoadCards %s: %w", path, err)
	}
	defer db.Close()

	if err := CreateSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("fs.LoadCards %s: %w", path, err)
	}

	cards, err := QueryCards(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("fs.LoadCards %s: %w", path, err)
	}
	if len(cards) > 0 {
		log.Debug().Str("path", path).Int("cards", len(cards)).Msg("cards loaded")
		return cards, nil
	}

	sample := SampleCards()
	if err := SeedCards(ctx, db, sample); err != nil {
		return nil, fmt.Errorf("fs.LoadCards %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("empty database seeded with sample board")
	return sample, nil
}

func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SeedCards inserts cards in order inside one transaction.
func SeedCards(ctx context.Context, db *sql.DB, cards []card.Card) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, c := range cards {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, title, description, column_id, priority, comments, files, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Description, string(c.Column), c.Priority.Number(), c.Comments, c.Files, i)
		if err != nil {
			return fmt.Errorf("insert card %q: %w", c.ID, err)
		}
		for j, img := range c.Images {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO card_images (card_id, position, image) VALUES (?, ?, ?)`,
				c.ID, j, img.Src); err != nil {
				return fmt.Errorf("insert image for %q: %w", c.ID, err)
			}
		}
		for j, a := range c.Assignees {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO card_assignees (card_id, position, avatar) VALUES (?, ?, ?)`,
				c.ID, j, a.Avatar); err != nil {
				return fmt.Errorf("insert assignee for %q: %w", c.ID, err)
			}
		}
	}
	return tx.Commit()
}

// QueryCards returns every card ordered by position with its images and
// assignees attached.
func QueryCards(ctx context.Context, db *sql.DB) ([]card.Card, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, COALESCE(description, ''), column_id, priority, comments, files
		 FROM cards ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []card.Card
	index := make(map[string]int)
	for rows.Next() {
		var (
			c        card.Card
			col      string
			priority int
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &col, &priority, &c.Comments, &c.Files); err != nil {
			return nil, err
		}
		c.Column = column.ID(col)
		c.Priority, err = card.ParsePriority(strconv.Itoa(priority))
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", c.ID, err)
		}
		index[c.ID] = len(cards)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = queryChildren(ctx, db,
		`SELECT card_id, image FROM card_images ORDER BY card_id, position`,
		func(id, value string) {
			if i, ok := index[id]; ok {
				cards[i].Images = append(cards[i].Images, card.Image{Src: value})
			}
		})
	if err != nil {
		return nil, err
	}

	err = queryChildren(ctx, db,
		`SELECT card_id, avatar FROM card_assignees ORDER BY card_id, position`,
		func(id, value string) {
			if i, ok := index[id]; ok {
				cards[i].Assignees = append(cards[i].Assignees, card.Assignee{Avatar: value})
			}
		})
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func queryChildren(ctx context.Context, db *sql.DB, query string, add func(id, value string)) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return err
		}
		add(id, value)
	}
	return rows.Err()
}
