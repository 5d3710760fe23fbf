// Package storage provides SQLite-based persistence for generated dungeons
// and completed crawl runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// DungeonRecord is a persisted dungeon layout. Tiles hold the row-major
// tile codes, one byte per cell.
type DungeonRecord struct {
	ID        int64
	Method    string
	Rows      int
	Cols      int
	Seed      int64
	Tiles     []byte
	CreatedAt time.Time
}

// RunRecord is the outcome of one crawl through a saved dungeon.
type RunRecord struct {
	ID        int64
	DungeonID int64
	Method    string // Joined from the dungeons table, empty on insert
	Steps     int
	PathLen   int // Shortest-path length at generation time, 0 if unsolved
	Completed bool
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS dungeons (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			method TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			tiles BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_dungeons_method ON dungeons(method);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dungeon_id INTEGER NOT NULL REFERENCES dungeons(id),
			steps INTEGER NOT NULL DEFAULT 0,
			path_len INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_dungeon ON runs(dungeon_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(dungeon_id, completed, steps);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveDungeon persists a generated dungeon layout.
// Returns the ID of the inserted record.
func (s *Store) SaveDungeon(d *dungeon.Dungeon, method dungeon.Method) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO dungeons (method, rows, cols, seed, tiles) VALUES (?, ?, ?, ?, ?)",
		method.String(), d.Rows(), d.Cols(), d.Seed(), d.ExportBytes(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save dungeon: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// DungeonByID retrieves a saved dungeon record by ID.
// Returns nil when no record exists.
func (s *Store) DungeonByID(id int64) (*DungeonRecord, error) {
	var rec DungeonRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, method, rows, cols, seed, tiles, created_at
		 FROM dungeons
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Method, &rec.Rows, &rec.Cols, &rec.Seed, &rec.Tiles, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dungeon: %w", err)
	}

	rec.CreatedAt = parseTimestamp(createdAt)
	return &rec, nil
}

// LoadDungeon rebuilds a playable dungeon from a saved record.
func (s *Store) LoadDungeon(id int64) (*dungeon.Dungeon, error) {
	rec, err := s.DungeonByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("storage: no dungeon with id %d", id)
	}

	if len(rec.Tiles) != rec.Rows*rec.Cols {
		return nil, fmt.Errorf("storage: corrupt tile data for dungeon %d: have %d bytes for %dx%d",
			id, len(rec.Tiles), rec.Rows, rec.Cols)
	}

	d, err := dungeon.Restore(rec.Rows, rec.Cols, rec.Seed, dungeon.TilesFromBytes(rec.Tiles))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot restore dungeon %d: %w", id, err)
	}
	return d, nil
}

// RecentDungeons retrieves the most recently generated dungeons.
// Tile blobs are not loaded; use LoadDungeon for that.
func (s *Store) RecentDungeons(limit int) ([]DungeonRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, method, rows, cols, seed, created_at
		 FROM dungeons
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query dungeons: %w", err)
	}
	defer rows.Close()

	var records []DungeonRecord
	for rows.Next() {
		var rec DungeonRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Method, &rec.Rows, &rec.Cols, &rec.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SaveRun records the outcome of a crawl through a saved dungeon.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (dungeon_id, steps, path_len, completed, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		run.DungeonID, run.Steps, run.PathLen, run.Completed, run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs across all dungeons, newest
// first, with the generation method joined in.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.dungeon_id, d.method, r.steps, r.path_len, r.completed, r.duration_secs, r.created_at
		 FROM runs r
		 JOIN dungeons d ON d.id = r.dungeon_id
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsByMethod retrieves runs over dungeons generated by one method,
// newest first.
func (s *Store) RunsByMethod(method string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.dungeon_id, d.method, r.steps, r.path_len, r.completed, r.duration_secs, r.created_at
		 FROM runs r
		 JOIN dungeons d ON d.id = r.dungeon_id
		 WHERE d.method = ?
		 ORDER BY r.id DESC
		 LIMIT ?`,
		method, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsForDungeon retrieves runs recorded against one dungeon, best
// (completed, fewest steps) first.
func (s *Store) RunsForDungeon(dungeonID int64, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.dungeon_id, d.method, r.steps, r.path_len, r.completed, r.duration_secs, r.created_at
		 FROM runs r
		 JOIN dungeons d ON d.id = r.dungeon_id
		 WHERE r.dungeon_id = ?
		 ORDER BY r.completed DESC, r.steps ASC
		 LIMIT ?`,
		dungeonID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestSteps returns the lowest completed step count for a dungeon.
// Returns 0 if no completed run exists.
func (s *Store) BestSteps(dungeonID int64) (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(steps) FROM runs WHERE dungeon_id = ? AND completed = 1",
		dungeonID,
	).Scan(&steps)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best steps: %w", err)
	}

	if !steps.Valid {
		return 0, nil
	}

	return int(steps.Int64), nil
}

// ClearRuns deletes all runs for the given dungeon.
func (s *Store) ClearRuns(dungeonID int64) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE dungeon_id = ?", dungeonID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MethodStats contains aggregated run statistics for one generation method.
type MethodStats struct {
	Method    string
	RunCount  int
	Completed int
	BestSteps int
	AvgSteps  float64
}

// StatsByMethod aggregates run outcomes per generation method.
func (s *Store) StatsByMethod() (map[string]*MethodStats, error) {
	rows, err := s.db.Query(
		`SELECT d.method, COUNT(*), SUM(r.completed),
		        COALESCE(MIN(CASE WHEN r.completed = 1 THEN r.steps END), 0),
		        COALESCE(AVG(r.steps), 0)
		 FROM runs r
		 JOIN dungeons d ON d.id = r.dungeon_id
		 GROUP BY d.method`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get method stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MethodStats)
	for rows.Next() {
		var m MethodStats
		if err := rows.Scan(&m.Method, &m.RunCount, &m.Completed, &m.BestSteps, &m.AvgSteps); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[m.Method] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var createdAt any
		if err := rows.Scan(
			&run.ID,
			&run.DungeonID,
			&run.Method,
			&run.Steps,
			&run.PathLen,
			&run.Completed,
			&run.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		run.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTimestamp handles both time.Time and string values coming back
// from the driver for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
