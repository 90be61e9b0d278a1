package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/person"
	"library-backend/internal/shared/hateoas"
	"library-backend/pkg/database"
)

const personColumns = `id, first_name, last_name, address, gender, enabled`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a person.Repository backed by the persons table.
func NewPostgresRepository(pool *pgxpool.Pool) person.Repository {
	return &postgresRepository{pool: pool}
}

func scanPerson(row pgx.Row) (*person.Person, error) {
	var p person.Person
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Address, &p.Gender, &p.Enabled)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`

	p, err := scanPerson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, person.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) FindPage(ctx context.Context, req hateoas.PageRequest) ([]person.Person, int64, error) {
	column, ok := person.SortColumn(req.Sort)
	if !ok {
		return nil, 0, fmt.Errorf("unsupported person sort field %q", req.Sort)
	}
	direction := "ASC"
	if req.Direction == hateoas.Desc {
		direction = "DESC"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM persons`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count persons: %w", err)
	}

	// column and direction come from fixed whitelists, never from raw input
	query := fmt.Sprintf(
		`SELECT %s FROM persons ORDER BY %s %s, id ASC LIMIT $1 OFFSET $2`,
		personColumns, column, direction,
	)

	rows, err := r.pool.Query(ctx, query, req.Size, req.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	people := make([]person.Person, 0, req.Size)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return people, total, nil
}

func (r *postgresRepository) Save(ctx context.Context, p *person.Person) (*person.Person, error) {
	if p.ID == 0 {
		return r.insert(ctx, p)
	}

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*person.Person, error) {
		// row lock so concurrent writers serialize; last one wins
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM persons WHERE id = $1 FOR UPDATE`, p.ID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, person.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to lock person: %w", err)
		}

		query := `
			UPDATE persons
			SET first_name = $2, last_name = $3, address = $4, gender = $5, enabled = $6
			WHERE id = $1
			RETURNING ` + personColumns

		updated, err := scanPerson(tx.QueryRow(ctx, query,
			p.ID, p.FirstName, p.LastName, p.Address, p.Gender, p.Enabled,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to update person: %w", err)
		}
		return updated, nil
	})
}

func (r *postgresRepository) insert(ctx context.Context, p *person.Person) (*person.Person, error) {
	query := `
		INSERT INTO persons (first_name, last_name, address, gender, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + personColumns

	created, err := scanPerson(r.pool.QueryRow(ctx, query,
		p.FirstName, p.LastName, p.Address, p.Gender, p.Enabled,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM persons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check person existence: %w", err)
	}
	return exists, nil
}
