package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents one recorded solve in the database.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Scramble   string
	Solution   *string
	ErrorCode  *int
	MaxDepth   int
	TimeoutMs  int64
	ElapsedMs  int64
	MoveCount  *int
	DeviceName *string
}

// SolveRepository provides CRUD operations for solve history.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Record inserts a completed solve attempt, successful or not.
func (r *SolveRepository) Record(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, scramble, solution, error_code, max_depth, timeout_ms, elapsed_ms, move_count, device_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.Scramble, s.Solution, s.ErrorCode, s.MaxDepth, s.TimeoutMs, s.ElapsedMs, s.MoveCount, s.DeviceName)
	if err != nil {
		return "", fmt.Errorf("failed to record solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, scramble, solution, error_code, max_depth, timeout_ms, elapsed_ms, move_count, device_name
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution, &s.ErrorCode,
		&s.MaxDepth, &s.TimeoutMs, &s.ElapsedMs, &s.MoveCount, &s.DeviceName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// List retrieves the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, scramble, solution, error_code, max_depth, timeout_ms, elapsed_ms, move_count, device_name
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string
		if err := rows.Scan(
			&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution, &s.ErrorCode,
			&s.MaxDepth, &s.TimeoutMs, &s.ElapsedMs, &s.MoveCount, &s.DeviceName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve record.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
