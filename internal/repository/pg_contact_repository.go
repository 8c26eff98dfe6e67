package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/visioncraftlabs/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository,
// for deployments that want submissions to outlive the process.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a contact_submissions row. Id and creation timestamp come
// from the database via RETURNING.
func (r *PgContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	sub := &model.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		in.Name, in.Email, in.Phone, in.Message,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contact_submissions
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*model.ContactSubmission{}
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}
