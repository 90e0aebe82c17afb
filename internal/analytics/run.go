package analytics

import (
	"fmt"
	"time"
)

// Run is one recorded import run.
type Run struct {
	ID                int64
	SourcePath        string
	DestPath          string
	DryRun            bool
	FilesScanned      int
	FilesAnalyzed     int
	SuccessfulImports int
	FailedImports     int
	SkippedFiles      int
	TotalSize         int64
	DurationMs        int64
	HardlinksCreated  int
	FilesCopied       int
	CreatedAt         time.Time
}

// RunFile is one successfully imported file within a run.
type RunFile struct {
	ID           int64
	RunID        int64
	OriginalPath string
	NewPath      string
	Size         int64
	Quality      string
	Hardlinked   bool
}

// RecordRun persists a run, its imported files, and the per-group activity
// in one transaction. Group names are folded onto existing near-identical
// groups before upserting. The returned map carries the opaque storage id
// for each input group name; callers hold no other reference to the rows.
func (s *Store) RecordRun(run *Run, files []RunFile, groups map[string]GroupMetrics) (map[string]int64, error) {
	tx, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRun(tx.tx, run); err != nil {
		return nil, err
	}

	for i := range files {
		files[i].RunID = run.ID
		if err := insertRunFile(tx.tx, &files[i]); err != nil {
			return nil, err
		}
	}

	ids := make(map[string]int64, len(groups))
	for name, m := range groups {
		id, err := upsertGroup(tx.tx, name, m)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit run: %w", err)
	}
	return ids, nil
}

func insertRun(q querier, r *Run) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO runs (source_path, dest_path, dry_run, files_scanned, files_analyzed,
			successful_imports, failed_imports, skipped_files, total_size, duration_ms,
			hardlinks_created, files_copied, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SourcePath, r.DestPath, r.DryRun, r.FilesScanned, r.FilesAnalyzed,
		r.SuccessfulImports, r.FailedImports, r.SkippedFiles, r.TotalSize, r.DurationMs,
		r.HardlinksCreated, r.FilesCopied, now,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	r.ID = id
	r.CreatedAt = now
	return nil
}

func insertRunFile(q querier, f *RunFile) error {
	result, err := q.Exec(`
		INSERT INTO run_files (run_id, original_path, new_path, size, quality, hardlinked)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.RunID, f.OriginalPath, f.NewPath, f.Size, f.Quality, f.Hardlinked,
	)
	if err != nil {
		return fmt.Errorf("insert run file: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	f.ID = id
	return nil
}

const runColumns = `id, source_path, dest_path, dry_run, files_scanned, files_analyzed,
	successful_imports, failed_imports, skipped_files, total_size, duration_ms,
	hardlinks_created, files_copied, created_at`

func scanRun(row interface{ Scan(...any) error }) (*Run, error) {
	r := &Run{}
	err := row.Scan(&r.ID, &r.SourcePath, &r.DestPath, &r.DryRun, &r.FilesScanned,
		&r.FilesAnalyzed, &r.SuccessfulImports, &r.FailedImports, &r.SkippedFiles,
		&r.TotalSize, &r.DurationMs, &r.HardlinksCreated, &r.FilesCopied, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func getRun(q querier, id int64) (*Run, error) {
	r, err := scanRun(q.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get run %d: %w", id, mapSQLiteError(err))
	}
	return r, nil
}

// GetRun retrieves a run by ID. Returns ErrNotFound if it does not exist.
func (s *Store) GetRun(id int64) (*Run, error) { return getRun(s.db, id) }

// GetRun retrieves a run by ID within a transaction.
func (t *Tx) GetRun(id int64) (*Run, error) { return getRun(t.tx, id) }

// ListRuns returns runs ordered newest first.
func (s *Store) ListRuns(limit, offset int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT `+runColumns+` FROM runs
		ORDER BY id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListRunFiles returns the imported files recorded for a run.
func (s *Store) ListRunFiles(runID int64) ([]*RunFile, error) {
	rows, err := s.db.Query(`
		SELECT id, run_id, original_path, new_path, size, quality, hardlinked
		FROM run_files WHERE run_id = ? ORDER BY id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run files: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	var files []*RunFile
	for rows.Next() {
		f := &RunFile{}
		if err := rows.Scan(&f.ID, &f.RunID, &f.OriginalPath, &f.NewPath, &f.Size, &f.Quality, &f.Hardlinked); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
