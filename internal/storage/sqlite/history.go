// Package sqlite keeps the session's interpretation history in SQLite.
// The application opens it in memory, so nothing outlives the process.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"shoplist/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

const MemoryPath = ":memory:"

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS utterances (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		raw_text    TEXT NOT NULL,
		intent      TEXT NOT NULL,
		feedback    TEXT DEFAULT '',
		list_size   INTEGER NOT NULL DEFAULT 0,
		interpreted DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_utterances_intent ON utterances(intent);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// History records every handled utterance.
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

func (h *History) Record(rec domain.InterpretationRecord) (int64, error) {
	if rec.Interpreted.IsZero() {
		rec.Interpreted = time.Now()
	}
	res, err := h.db.Exec(
		`INSERT INTO utterances (raw_text, intent, feedback, list_size, interpreted)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RawText, string(rec.Intent), rec.Feedback, rec.ListSize, rec.Interpreted.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("record utterance: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit records, newest first. A limit below 1 returns
// everything.
func (h *History) Recent(limit int) ([]domain.InterpretationRecord, error) {
	query := `SELECT id, raw_text, intent, feedback, list_size, interpreted
		FROM utterances ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []domain.InterpretationRecord
	for rows.Next() {
		var rec domain.InterpretationRecord
		var intent string
		if err := rows.Scan(&rec.ID, &rec.RawText, &intent, &rec.Feedback, &rec.ListSize, &rec.Interpreted); err != nil {
			return nil, err
		}
		rec.Intent = domain.Intent(intent)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (h *History) Stats() (domain.InterpretationStats, error) {
	stats := domain.InterpretationStats{ByIntent: make(map[domain.Intent]int)}

	rows, err := h.db.Query(`SELECT intent, COUNT(*) FROM utterances GROUP BY intent`)
	if err != nil {
		return stats, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var intent string
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return stats, err
		}
		stats.ByIntent[domain.Intent(intent)] = count
		stats.Total += count
	}
	stats.Unrecognized = stats.ByIntent[domain.IntentUnrecognized]
	return stats, rows.Err()
}
