package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Source identifies where a solve's input cube came from.
type Source string

const (
	SourceFile   Source = "file"
	SourceDevice Source = "device"
)

// Solve is a single logged solve attempt: the cube it solved, the
// solution found, and per-phase timing.
type Solve struct {
	ID               string
	CreatedAt        time.Time
	Scramble         *string
	InputGrid        string
	Solution         string
	MoveCount        int
	Phase1MoveCount  int
	Phase2MoveCount  int
	Phase1DurationMs int64
	Phase2DurationMs int64
	TotalDurationMs  int64
	Source           Source
	DeviceName       *string
	DeviceID         *string
}

// SolveRepository provides CRUD access to the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a repository backed by db.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create logs a completed solve and returns its generated ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(`
		INSERT INTO solves (
			id, created_at, scramble, input_grid, solution,
			move_count, phase1_move_count, phase2_move_count,
			phase1_duration_ms, phase2_duration_ms, total_duration_ms,
			source, device_name, device_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, time.Now().UTC().Format(time.RFC3339), s.Scramble, s.InputGrid, s.Solution,
		s.MoveCount, s.Phase1MoveCount, s.Phase2MoveCount,
		s.Phase1DurationMs, s.Phase2DurationMs, s.TotalDurationMs,
		string(s.Source), s.DeviceName, s.DeviceID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}
	return id, nil
}

var selectColumns = `
	id, created_at, scramble, input_grid, solution,
	move_count, phase1_move_count, phase2_move_count,
	phase1_duration_ms, phase2_duration_ms, total_duration_ms,
	source, device_name, device_id
`

func scanSolve(scan func(dest ...any) error) (*Solve, error) {
	var s Solve
	var createdAtStr, source string
	err := scan(
		&s.ID, &createdAtStr, &s.Scramble, &s.InputGrid, &s.Solution,
		&s.MoveCount, &s.Phase1MoveCount, &s.Phase2MoveCount,
		&s.Phase1DurationMs, &s.Phase2DurationMs, &s.TotalDurationMs,
		&source, &s.DeviceName, &s.DeviceID,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	s.Source = Source(source)
	return &s, nil
}

// Get retrieves a solve by ID. Returns (nil, nil) if not found.
func (r *SolveRepository) Get(id string) (*Solve, error) {
	row := r.db.QueryRow("SELECT "+selectColumns+" FROM solves WHERE id = ?", id)
	s, err := scanSolve(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently logged solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	row := r.db.QueryRow("SELECT " + selectColumns + " FROM solves ORDER BY created_at DESC LIMIT 1")
	s, err := scanSolve(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves up to limit solves, most recent first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query("SELECT "+selectColumns+" FROM solves ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		s, err := scanSolve(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Delete removes a logged solve by ID.
func (r *SolveRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM solves WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
