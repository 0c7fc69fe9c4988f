package store

import (
	"context"
	"fmt"
	"time"
)

// SessionRecord describes one game session.
type SessionRecord struct {
	ID            string
	StartedAt     time.Time
	EndedAt       time.Time
	RoundsPlanned int
	RoundsPlayed  int
}

// RoundEventData captures one scored round for the history log.
type RoundEventData struct {
	SessionID  string
	Round      int
	RobotMove  string
	PlayerMove string
	Result     string
}

// Tally aggregates round outcomes across all recorded sessions.
type Tally struct {
	Rounds     int
	RobotWins  int
	PlayerWins int
	Ties       int
}

// HistoryRepo provides append and query access to game history.
// The session controller records through this interface; a nil repo
// disables recording.
type HistoryRepo interface {
	BeginSession(ctx context.Context, id string, roundsPlanned int) error
	EndSession(ctx context.Context, id string, roundsPlayed int) error
	AppendRound(ctx context.Context, data RoundEventData) error
}

var _ HistoryRepo = (*Store)(nil)

// BeginSession records the start of a session.
func (s *Store) BeginSession(ctx context.Context, id string, roundsPlanned int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, rounds_planned, rounds_played) VALUES (?, ?, ?, 0)`,
		id, time.Now().UTC().Format(time.RFC3339), roundsPlanned,
	)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	return nil
}

// EndSession marks a session finished with the number of rounds played.
func (s *Store) EndSession(ctx context.Context, id string, roundsPlayed int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, rounds_played = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), roundsPlayed, id,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// AppendRound records one scored round.
func (s *Store) AppendRound(ctx context.Context, data RoundEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (session_id, round_num, robot_move, player_move, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Round, data.RobotMove, data.PlayerMove, data.Result,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append round: %w", err)
	}
	return nil
}

// AllTimeTally returns win/loss/tie counts across every recorded round.
func (s *Store) AllTimeTally(ctx context.Context) (Tally, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT result, COUNT(*) FROM rounds GROUP BY result`)
	if err != nil {
		return Tally{}, fmt.Errorf("query tally: %w", err)
	}
	defer rows.Close()

	var t Tally
	for rows.Next() {
		var result string
		var count int
		if err := rows.Scan(&result, &count); err != nil {
			return Tally{}, fmt.Errorf("scan tally: %w", err)
		}
		switch result {
		case "robot":
			t.RobotWins = count
		case "player":
			t.PlayerWins = count
		case "tie":
			t.Ties = count
		}
		t.Rounds += count
	}
	return t, rows.Err()
}

// RecentRounds returns up to limit rounds, most recent first.
func (s *Store) RecentRounds(ctx context.Context, limit int) ([]RoundEventData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, round_num, robot_move, player_move, result
		 FROM rounds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundEventData
	for rows.Next() {
		var r RoundEventData
		if err := rows.Scan(&r.SessionID, &r.Round, &r.RobotMove, &r.PlayerMove, &r.Result); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
