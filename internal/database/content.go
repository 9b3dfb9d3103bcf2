package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"streamvault/models"
)

// ContentRepository persists catalog items.
type ContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a content repository backed by db.
func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = `id, title, synopsis, cast_list, director, genre, release_year, average_rating`

// Create inserts a catalog item and returns its assigned ID.
func (r *ContentRepository) Create(ctx context.Context, c models.Content) (int64, error) {
	res, err := execWithRetry(ctx, r.db,
		`INSERT INTO content (title, synopsis, cast_list, director, genre, release_year, average_rating)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.Synopsis, c.Cast, c.Director, c.Genre, c.ReleaseYear, c.AverageRating,
	)
	if err != nil {
		return 0, fmt.Errorf("insert content: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetByID fetches one catalog item. Returns ErrNotFound when absent.
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contentColumns+` FROM content WHERE id = ?`, id)

	var c models.Content
	err := row.Scan(&c.ID, &c.Title, &c.Synopsis, &c.Cast, &c.Director, &c.Genre, &c.ReleaseYear, &c.AverageRating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	return &c, nil
}

// List returns the full catalog in insertion order.
func (r *ContentRepository) List(ctx context.Context) ([]models.Content, error) {
	return r.query(ctx, `SELECT `+contentColumns+` FROM content ORDER BY id`)
}

// Search returns catalog items matching every supplied filter. An empty
// filter returns the full catalog; no matches yields an empty slice.
func (r *ContentRepository) Search(ctx context.Context, filter models.SearchFilter) ([]models.Content, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Query != "" {
		clauses = append(clauses, `title LIKE '%' || ? || '%'`)
		args = append(args, filter.Query)
	}
	if filter.Genre != "" {
		clauses = append(clauses, `genre = ?`)
		args = append(args, filter.Genre)
	}
	if filter.Year != nil {
		clauses = append(clauses, `release_year = ?`)
		args = append(args, *filter.Year)
	}
	if filter.MinRating != nil {
		clauses = append(clauses, `average_rating >= ?`)
		args = append(args, *filter.MinRating)
	}

	query := `SELECT ` + contentColumns + ` FROM content`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY id`

	return r.query(ctx, query, args...)
}

func (r *ContentRepository) query(ctx context.Context, query string, args ...any) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer rows.Close()

	items := make([]models.Content, 0)
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.Title, &c.Synopsis, &c.Cast, &c.Director, &c.Genre, &c.ReleaseYear, &c.AverageRating); err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content: %w", err)
	}
	return items, nil
}

// Exists reports whether a catalog item with the given ID exists.
func (r *ContentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check content: %w", err)
	}
	return count > 0, nil
}
