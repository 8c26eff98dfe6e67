package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/visioncraftlabs/backend/internal/model"
)

// PgUploadRepository is the PostgreSQL implementation of UploadRepository.
type PgUploadRepository struct {
	pool *pgxpool.Pool
}

// NewPgUploadRepository creates a PgUploadRepository backed by the given pool.
func NewPgUploadRepository(pool *pgxpool.Pool) *PgUploadRepository {
	return &PgUploadRepository{pool: pool}
}

var _ UploadRepository = (*PgUploadRepository)(nil)

func (r *PgUploadRepository) Create(ctx context.Context, in model.UploadInput) (*model.ImageUpload, error) {
	up := &model.ImageUpload{
		FileName:     in.FileName,
		OriginalName: in.OriginalName,
		FileSize:     in.FileSize,
		MimeType:     in.MimeType,
		UploadPath:   in.UploadPath,
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		ClientPhone:  in.ClientPhone,
		Status:       model.StatusUploaded,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO image_uploads
		   (file_name, original_name, file_size, mime_type, upload_path,
		    client_name, client_email, client_phone, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		in.FileName, in.OriginalName, in.FileSize, in.MimeType, in.UploadPath,
		in.ClientName, in.ClientEmail, in.ClientPhone, model.StatusUploaded,
	).Scan(&up.ID, &up.CreatedAt)
	if err != nil {
		return nil, err
	}
	return up, nil
}

func (r *PgUploadRepository) List(ctx context.Context) ([]*model.ImageUpload, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, file_name, original_name, file_size, mime_type, upload_path,
		        client_name, client_email, client_phone, status, created_at
		 FROM image_uploads
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ups := []*model.ImageUpload{}
	for rows.Next() {
		var u model.ImageUpload
		if err := rows.Scan(&u.ID, &u.FileName, &u.OriginalName, &u.FileSize, &u.MimeType,
			&u.UploadPath, &u.ClientName, &u.ClientEmail, &u.ClientPhone, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		ups = append(ups, &u)
	}
	return ups, rows.Err()
}

func (r *PgUploadRepository) Get(ctx context.Context, id int) (*model.ImageUpload, error) {
	var u model.ImageUpload
	err := r.pool.QueryRow(ctx,
		`SELECT id, file_name, original_name, file_size, mime_type, upload_path,
		        client_name, client_email, client_phone, status, created_at
		 FROM image_uploads WHERE id = $1`, id,
	).Scan(&u.ID, &u.FileName, &u.OriginalName, &u.FileSize, &u.MimeType,
		&u.UploadPath, &u.ClientName, &u.ClientEmail, &u.ClientPhone, &u.Status, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUploadRepository) UpdateStatus(ctx context.Context, id int, status string) (*model.ImageUpload, error) {
	var u model.ImageUpload
	err := r.pool.QueryRow(ctx,
		`UPDATE image_uploads SET status = $2 WHERE id = $1
		 RETURNING id, file_name, original_name, file_size, mime_type, upload_path,
		           client_name, client_email, client_phone, status, created_at`,
		id, status,
	).Scan(&u.ID, &u.FileName, &u.OriginalName, &u.FileSize, &u.MimeType,
		&u.UploadPath, &u.ClientName, &u.ClientEmail, &u.ClientPhone, &u.Status, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
