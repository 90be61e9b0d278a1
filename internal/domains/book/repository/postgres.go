package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/hateoas"
	"library-backend/pkg/database"
)

const bookColumns = `id, title, author, price, launch_date`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.LaunchDate); err != nil {
		return nil, err
	}
	b.LaunchDate = b.LaunchDate.UTC()
	return &b, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindPage(ctx context.Context, req hateoas.PageRequest) ([]book.Book, int64, error) {
	column, ok := book.SortColumn(req.Sort)
	if !ok {
		return nil, 0, fmt.Errorf("unsupported book sort field %q", req.Sort)
	}
	direction := "ASC"
	if req.Direction == hateoas.Desc {
		direction = "DESC"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM books ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		bookColumns, column, direction,
	)

	rows, err := r.pool.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0, req.Size)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	if b.ID == 0 {
		query := `
			INSERT INTO books (title, author, price, launch_date)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + bookColumns

		created, err := scanBook(r.pool.QueryRow(ctx, query, b.Title, b.Author, b.Price, b.LaunchDate))
		if err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
		return created, nil
	}

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM books WHERE id = $1 FOR UPDATE`, b.ID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, book.ErrBookNotFound
			}
			return nil, fmt.Errorf("failed to lock book: %w", err)
		}

		query := `
			UPDATE books
			SET title = $2, author = $3, price = $4, launch_date = $5
			WHERE id = $1
			RETURNING ` + bookColumns

		updated, err := scanBook(tx.QueryRow(ctx, query, b.ID, b.Title, b.Author, b.Price, b.LaunchDate))
		if err != nil {
			return nil, fmt.Errorf("failed to update book: %w", err)
		}
		return updated, nil
	})
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}
