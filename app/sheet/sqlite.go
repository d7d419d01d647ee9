package sheet

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/isabella232/www-teepy/app/contact"
)

var (
	_ contact.Recorder = (*SQLiteRecorder)(nil)
	_ Counter          = (*SQLiteRecorder)(nil)
)

// SQLiteRecorder keeps submissions in a local table shaped like the lead
// spreadsheet.
type SQLiteRecorder struct {
	db *sql.DB
}

func OpenSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	version, dirty, err := RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	slog.Debug("SQLite recorder ready", "path", path, "schema_version", version, "dirty", dirty)

	return &SQLiteRecorder{db: db}, nil
}

func (r *SQLiteRecorder) Append(ctx context.Context, row []string) error {
	if len(row) != len(Columns) {
		return fmt.Errorf("expected %d values, got %d", len(Columns), len(row))
	}

	args := make([]any, 0, len(row)+1)
	args = append(args, uuid.NewString())
	for _, value := range row {
		args = append(args, value)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (id, date, time, topic, name, company, email, phone, promotion, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

func (r *SQLiteRecorder) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}

// Rows returns the most recent submissions, newest first.
func (r *SQLiteRecorder) Rows(ctx context.Context, limit int) ([][]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, time, topic, name, company, email, phone, promotion, message
		FROM submissions
		ORDER BY recorded_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		values := make([]string, len(Columns))
		dest := make([]any, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		result = append(result, values)
	}

	return result, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
