// Package log wraps zerolog for the aria tool. By default logging is a
// no-op; SetStd switches on a console writer, and Init additionally mirrors
// every JSON event into an SQLite database so past runs can be inspected
// with the logs subcommand.
package log

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"aria-go/pkg/appdir"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
	store     *sqliteStore

	// ErrNotInitialized is returned by retrieval functions before Init.
	ErrNotInitialized = errors.New("log: sqlite store not initialized, call log.Init first")
)

// sqliteStore is an io.Writer appending one JSON log event per row.
type sqliteStore struct {
	db     *sql.DB
	insert *sql.Stmt
	mu     sync.Mutex
}

func openStore(path string) (*sqliteStore, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("log: failed to open sqlite db %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("log: failed to ping sqlite db %s: %w", path, err)
	}
	const schema = `
    CREATE TABLE IF NOT EXISTS events (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
        event TEXT NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("log: failed to create events table: %w", err)
	}
	insert, err := db.Prepare(`INSERT INTO events (event) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("log: failed to prepare insert: %w", err)
	}
	return &sqliteStore{db: db, insert: insert}, nil
}

func (s *sqliteStore) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.insert.Exec(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *sqliteStore) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var firstErr error
	if s.insert != nil {
		firstErr = s.insert.Close()
		s.insert = nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.db = nil
	}
	return firstErr
}

// SetStd routes log events to a console writer on stderr.
func SetStd() {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init opens (creating if needed) the SQLite event store and routes log
// events to both the console and the store. A relative dbFile is placed in
// the application directory.
func Init(dbFile string) error {
	if dbFile == "" {
		return errors.New("log: Init needs an explicit db file")
	}
	path := dbFile
	if !filepath.IsAbs(path) {
		if err := appdir.Ensure(); err != nil {
			return fmt.Errorf("log: failed to create app dir: %w", err)
		}
		path = filepath.Join(appdir.AppDir(), dbFile)
	}

	mu.Lock()
	defer mu.Unlock()
	if store != nil {
		return errors.New("log: already initialized")
	}

	s, err := openStore(path)
	if err != nil {
		return err
	}
	store = s

	zerolog.TimeFieldFormat = time.RFC3339Nano
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	pkgLogger = zerolog.New(zerolog.MultiLevelWriter(console, store)).
		With().Timestamp().Logger()
	return nil
}

// Close flushes and closes the SQLite store, if open, and reverts to a
// no-op logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if store == nil {
		return nil
	}
	s := store
	store = nil
	pkgLogger = zerolog.Nop()
	return s.close()
}

// logger returns a pointer to a snapshot of the current logger. The copy
// keeps the event methods addressable without handing out a reference to
// the mutex-guarded package variable.
func logger() *zerolog.Logger {
	mu.RLock()
	l := pkgLogger
	mu.RUnlock()
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }
func Fatal() *zerolog.Event { return logger().Fatal() }

// Printf sends an info-level event. Arguments are handled in the manner
// of fmt.Printf.
func Printf(format string, v ...any) {
	logger().Info().CallerSkipFrame(1).Msgf(format, v...)
}

func Fatalf(format string, v ...any) {
	logger().Fatal().Msgf(format, v...)
}

// Entry is one stored log event.
type Entry struct {
	ID         int64
	InsertedAt time.Time
	Event      string // raw JSON
}

// GetLastNLogs returns the most recent n events in chronological order.
func GetLastNLogs(n int) ([]Entry, error) {
	mu.RLock()
	s := store
	mu.RUnlock()
	if s == nil {
		return nil, ErrNotInitialized
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`SELECT id, inserted_at, event FROM events ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("log: failed to query last %d events: %w", n, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Event); err != nil {
			return nil, fmt.Errorf("log: failed to scan event: %w", err)
		}
		e.InsertedAt = parseTimestamp(ts)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log: failed to iterate events: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// parseTimestamp tries the timestamp layouts SQLite is known to emit.
func parseTimestamp(ts string) time.Time {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
		time.DateTime,
	} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}
