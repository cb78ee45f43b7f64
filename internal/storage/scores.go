package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreEntry represents a single finished round.
type ScoreEntry struct {
	ID        int64
	Profile   string
	GameID    string
	SessionID string
	Score     int
	CreatedAt time.Time
}

type scoreRow struct {
	ID        int64  `db:"id"`
	Profile   string `db:"profile"`
	GameID    string `db:"game_id"`
	SessionID string `db:"session_id"`
	Score     int    `db:"score"`
	CreatedAt any    `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		Profile:   r.Profile,
		GameID:    r.GameID,
		SessionID: r.SessionID,
		Score:     r.Score,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

// NewSessionID returns an identifier grouping the rounds of one sitting.
func NewSessionID() string {
	return uuid.NewString()
}

// SaveScore records a finished round. A blank SessionID gets a fresh one.
// Returns the stored entry with its ID.
func (s *Store) SaveScore(e ScoreEntry) (ScoreEntry, error) {
	e.Profile = normalizeProfile(e.Profile)
	if e.SessionID == "" {
		e.SessionID = NewSessionID()
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (profile, game_id, session_id, score) VALUES (?, ?, ?, ?)",
		e.Profile, e.GameID, e.SessionID, e.Score,
	)
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot save score: %w", err)
	}

	e.ID, err = result.LastInsertId()
	if err != nil {
		return ScoreEntry{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return e, nil
}

// TopScores retrieves the top N scores for the given game, ordered by score
// descending. A blank profile ranks every profile together.
func (s *Store) TopScores(profile, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, profile, game_id, session_id, score, created_at
		 FROM scores
		 WHERE game_id = ? AND (? = '' OR profile = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, profile, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(profile, gameID string) (int, error) {
	var score int
	err := s.db.Get(&score,
		"SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ? AND (? = '' OR profile = ?)",
		gameID, profile, profile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// ClearScores deletes the scores of a game. A blank profile clears all.
func (s *Store) ClearScores(profile, gameID string) error {
	_, err := s.db.Exec(
		"DELETE FROM scores WHERE game_id = ? AND (? = '' OR profile = ?)",
		gameID, profile, profile,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(profile, gameID string) (*GameStats, error) {
	var row struct {
		Count      int     `db:"games"`
		High       int     `db:"high"`
		Avg        float64 `db:"avg"`
		Total      int64   `db:"total"`
		LastPlayed any     `db:"last_played"`
	}

	err := s.db.Get(&row,
		`SELECT COUNT(*) AS games,
		        COALESCE(MAX(score), 0) AS high,
		        COALESCE(AVG(score), 0) AS avg,
		        COALESCE(SUM(score), 0) AS total,
		        MAX(created_at) AS last_played
		 FROM scores
		 WHERE game_id = ? AND (? = '' OR profile = ?)`,
		gameID, profile, profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	return &GameStats{
		GameID:     gameID,
		GamesCount: row.Count,
		HighScore:  row.High,
		AvgScore:   row.Avg,
		TotalScore: row.Total,
		LastPlayed: parseTime(row.LastPlayed),
	}, nil
}
