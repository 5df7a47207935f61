package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/store"
)

const (
	kindSource = "source"
	kindTag    = "tag"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}
	// Pragmas are per connection, so keep exactly one.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
		}
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS jokes (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	source TEXT,
	source_nsfw INTEGER NOT NULL DEFAULT 0,
	nsfw INTEGER NOT NULL DEFAULT 0,
	created_at TEXT
);

CREATE TABLE IF NOT EXISTS joke_tags (
	joke_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	position INTEGER NOT NULL,
	tag TEXT NOT NULL,
	UNIQUE(joke_id, kind, tag),
	FOREIGN KEY(joke_id) REFERENCES jokes(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_joke_tags_tag ON joke_tags(kind, tag);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertJoke inserts or replaces a joke and both of its tag lists.
func (s *sqliteStore) UpsertJoke(ctx context.Context, j store.Joke) error {
	if j.ID == "" {
		return fmt.Errorf("%w: joke without id", internalerr.ErrInvalidInput)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO jokes (id, text, source, source_nsfw, nsfw, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	text=excluded.text,
	source=excluded.source,
	source_nsfw=excluded.source_nsfw,
	nsfw=excluded.nsfw,
	created_at=excluded.created_at;
`
	_, err = tx.ExecContext(ctx, stmt,
		j.ID,
		j.Text,
		j.Source,
		j.SourceNSFW,
		j.NSFW,
		j.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	if err := replaceTags(ctx, tx, j.ID, kindSource, j.SourceTags); err != nil {
		return err
	}
	if err := replaceTags(ctx, tx, j.ID, kindTag, j.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceTags(ctx context.Context, tx *sql.Tx, id, kind string, tags []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM joke_tags WHERE joke_id=? AND kind=?`, id, kind); err != nil {
		return err
	}
	tags = store.UniqueStrings(tags)
	if len(tags) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO joke_tags (joke_id, kind, position, tag) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, tag := range tags {
		if _, err := stmt.ExecContext(ctx, id, kind, i, tag); err != nil {
			return err
		}
	}
	return nil
}

// GetJoke retrieves a joke by ID
func (s *sqliteStore) GetJoke(ctx context.Context, id string) (store.Joke, error) {
	return s.loadJoke(ctx, id)
}

// ListJokes returns jokes in ID order, optionally only those with a tag.
func (s *sqliteStore) ListJokes(ctx context.Context, opts store.ListOptions) ([]store.Joke, error) {
	query := `SELECT id FROM jokes ORDER BY id`
	args := []interface{}{}
	if opts.Tag != "" {
		query = `
SELECT j.id
FROM jokes j
JOIN joke_tags t ON j.id = t.joke_id
WHERE t.kind = ? AND t.tag = ?
ORDER BY j.id`
		args = append(args, kindTag, opts.Tag)
	}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	ids, err := s.loadStringColumn(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	jokes := make([]store.Joke, 0, len(ids))
	for _, id := range ids {
		j, err := s.loadJoke(ctx, id)
		if err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	return jokes, nil
}

// UpdateTags replaces the classifier tags and NSFW flag of a joke.
func (s *sqliteStore) UpdateTags(ctx context.Context, id string, tags []string, nsfw bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE jokes SET nsfw=? WHERE id=?`, nsfw, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("joke %s: %w", id, internalerr.ErrNotFound)
	}
	if err := replaceTags(ctx, tx, id, kindTag, tags); err != nil {
		return err
	}
	return tx.Commit()
}

// TagCounts counts jokes per classifier tag, most common first.
func (s *sqliteStore) TagCounts(ctx context.Context) ([]store.TagCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT tag, COUNT(*) AS n
FROM joke_tags
WHERE kind = ?
GROUP BY tag
ORDER BY n DESC, tag ASC;
`, kindTag)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.TagCount
	for rows.Next() {
		var tc store.TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

func (s *sqliteStore) loadJoke(ctx context.Context, id string) (store.Joke, error) {
	var (
		j       store.Joke
		source  sql.NullString
		created sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
SELECT id, text, source, source_nsfw, nsfw, created_at
FROM jokes
WHERE id = ?;
`, id).Scan(&j.ID, &j.Text, &source, &j.SourceNSFW, &j.NSFW, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Joke{}, fmt.Errorf("joke %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Joke{}, err
	}
	j.Source = source.String
	if created.String != "" {
		if parsed, perr := time.Parse(time.RFC3339Nano, created.String); perr == nil {
			j.CreatedAt = parsed
		}
	}

	const tagQuery = `SELECT tag FROM joke_tags WHERE joke_id=? AND kind=? ORDER BY position`
	j.SourceTags, err = s.loadStringColumn(ctx, tagQuery, id, kindSource)
	if err != nil {
		return store.Joke{}, err
	}
	j.Tags, err = s.loadStringColumn(ctx, tagQuery, id, kindTag)
	if err != nil {
		return store.Joke{}, err
	}
	return j, nil
}

func (s *sqliteStore) loadStringColumn(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var val string
		if err := rows.Scan(&val); err != nil {
			return nil, err
		}
		result = append(result, val)
	}
	return result, rows.Err()
}
