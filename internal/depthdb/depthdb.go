// Package depthdb persists per-frame quality assessments to SQLite so
// reconstruction runs can be audited and retuned after the fact.
package depthdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/timeutil"
)

type DB struct {
	*sql.DB
	clock timeutil.Clock
}

// NewDB opens (creating if necessary) the assessment database at path.
// Use ":memory:" for an ephemeral store.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS frame_assessments (
			assessment_id TEXT PRIMARY KEY,
			source TEXT,
			score DOUBLE NOT NULL,
			coverage DOUBLE NOT NULL,
			smoothness DOUBLE NOT NULL,
			edge_quality DOUBLE NOT NULL,
			noise_level DOUBLE NOT NULL,
			accepted INTEGER NOT NULL,
			assessed_unix_nanos INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_frame_assessments_time
			ON frame_assessments(assessed_unix_nanos);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{DB: db, clock: timeutil.RealClock{}}, nil
}

// SetClock replaces the timestamp source. Tests use this to pin
// assessment times.
func (db *DB) SetClock(c timeutil.Clock) {
	db.clock = c
}

// Assessment is one stored frame assessment. Source is whatever the
// caller uses to identify the frame, typically a file path or topic
// name.
type Assessment struct {
	ID        string          `json:"assessment_id"`
	Source    string          `json:"source"`
	Score     float64         `json:"score"`
	Breakdown depth.Breakdown `json:"breakdown"`
	Accepted  bool            `json:"accepted"`
	Time      time.Time       `json:"time"`
}

// RecordAssessment stores one assessment and returns its generated ID.
func (db *DB) RecordAssessment(source string, score float64, b depth.Breakdown, accepted bool) (string, error) {
	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO frame_assessments
			(assessment_id, source, score, coverage, smoothness, edge_quality, noise_level, accepted, assessed_unix_nanos)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, source, score, b.Coverage, b.Smoothness, b.EdgeQuality, b.NoiseLevel,
		boolToInt(accepted), db.clock.Now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to record assessment: %w", err)
	}
	return id, nil
}

// Assessments returns up to limit stored assessments, newest first.
func (db *DB) Assessments(limit int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := db.Query(`
		SELECT assessment_id, source, score, coverage, smoothness, edge_quality, noise_level, accepted, assessed_unix_nanos
		FROM frame_assessments
		ORDER BY assessed_unix_nanos DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		var a Assessment
		var accepted int
		var nanos int64
		if err := rows.Scan(&a.ID, &a.Source, &a.Score,
			&a.Breakdown.Coverage, &a.Breakdown.Smoothness,
			&a.Breakdown.EdgeQuality, &a.Breakdown.NoiseLevel,
			&accepted, &nanos); err != nil {
			return nil, err
		}
		a.Accepted = accepted != 0
		a.Time = time.Unix(0, nanos)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Summary aggregates the stored assessments into run-level statistics.
type Summary struct {
	Total      int     `json:"total"`
	Accepted   int     `json:"accepted"`
	AcceptRate float64 `json:"accept_rate"`
	MeanScore  float64 `json:"mean_score"`
}

// Summarize computes a Summary over every stored assessment.
func (db *DB) Summarize() (Summary, error) {
	var s Summary
	var mean sql.NullFloat64
	err := db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(accepted), 0), AVG(score)
		FROM frame_assessments`).Scan(&s.Total, &s.Accepted, &mean)
	if err != nil {
		return Summary{}, err
	}
	if s.Total > 0 {
		s.AcceptRate = float64(s.Accepted) / float64(s.Total)
	}
	if mean.Valid {
		s.MeanScore = mean.Float64
	}
	return s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
