package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

type DatasetDB struct {
	db *sqlx.DB
}

func NewDataset(db *sqlx.DB) repo.Dataset {
	return &DatasetDB{db: db}
}

func (d *DatasetDB) AddDataset(ctx context.Context, dataset *entity.Dataset) (string, error) {
	query := `
		INSERT INTO dataset (
			user_id, title, description, data_type, file_format, size_mb, keywords,
			license, version, access_level, doi, citation, thumbnail_url,
			dataset_url, contributor_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	var id string
	err := d.db.QueryRowContext(ctx, query,
		dataset.UserID,
		dataset.Title,
		dataset.Description,
		dataset.DataType,
		dataset.FileFormat,
		dataset.SizeMB,
		pq.Array(dataset.Keywords),
		dataset.License,
		dataset.Version,
		dataset.AccessLevel,
		dataset.DOI,
		dataset.Citation,
		dataset.ThumbnailURL,
		dataset.DatasetURL,
		dataset.ContributorName,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (d *DatasetDB) GetDataset(ctx context.Context, id string) (*entity.Dataset, error) {
	var dataset entity.Dataset
	query := `
		SELECT id, user_id, title, description, data_type, file_format, size_mb, keywords,
		       license, version, access_level, doi, citation, thumbnail_url,
		       dataset_url, contributor_name, created_at
		FROM dataset WHERE id = $1
	`
	row := d.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&dataset.ID,
		&dataset.UserID,
		&dataset.Title,
		&dataset.Description,
		&dataset.DataType,
		&dataset.FileFormat,
		&dataset.SizeMB,
		pq.Array(&dataset.Keywords),
		&dataset.License,
		&dataset.Version,
		&dataset.AccessLevel,
		&dataset.DOI,
		&dataset.Citation,
		&dataset.ThumbnailURL,
		&dataset.DatasetURL,
		&dataset.ContributorName,
		&dataset.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrRecordNotFound
		}
		return nil, err
	}
	return &dataset, nil
}

func (d *DatasetDB) CountDatasetsByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := d.db.GetContext(ctx, &count, `SELECT count(*) FROM dataset WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
