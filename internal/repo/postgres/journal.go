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

type JournalDB struct {
	db *sqlx.DB
}

func NewJournal(db *sqlx.DB) repo.Journal {
	return &JournalDB{db: db}
}

func (j *JournalDB) AddJournal(ctx context.Context, journal *entity.Journal) (string, error) {
	// nil-срезы уходят в NULL, а не в пустой массив
	query := `
		INSERT INTO journal (
			user_id, title, authors, journal_name, volume, issue, pages, doi,
			abstract, publication_date, keywords_list, citations_count,
			impact_factor, category, thumbnail_url, open_access, peer_reviewed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	var id string
	err := j.db.QueryRowContext(ctx, query,
		journal.UserID,
		journal.Title,
		pq.Array(journal.Authors),
		journal.JournalName,
		journal.Volume,
		journal.Issue,
		journal.Pages,
		journal.DOI,
		journal.Abstract,
		journal.PublicationDate,
		pq.Array(journal.KeywordsList),
		journal.CitationsCount,
		journal.ImpactFactor,
		journal.Category,
		journal.ThumbnailURL,
		journal.OpenAccess,
		journal.PeerReviewed,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (j *JournalDB) GetJournal(ctx context.Context, id string) (*entity.Journal, error) {
	var journal entity.Journal
	query := `
		SELECT id, user_id, title, authors, journal_name, volume, issue, pages, doi,
		       abstract, publication_date, keywords_list, citations_count,
		       impact_factor, category, thumbnail_url, open_access, peer_reviewed, created_at
		FROM journal WHERE id = $1
	`
	row := j.db.QueryRowContext(ctx, query, id)
	err := row.Scan(
		&journal.ID,
		&journal.UserID,
		&journal.Title,
		pq.Array(&journal.Authors),
		&journal.JournalName,
		&journal.Volume,
		&journal.Issue,
		&journal.Pages,
		&journal.DOI,
		&journal.Abstract,
		&journal.PublicationDate,
		pq.Array(&journal.KeywordsList),
		&journal.CitationsCount,
		&journal.ImpactFactor,
		&journal.Category,
		&journal.ThumbnailURL,
		&journal.OpenAccess,
		&journal.PeerReviewed,
		&journal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrRecordNotFound
		}
		return nil, err
	}
	return &journal, nil
}

func (j *JournalDB) CountJournalsByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := j.db.GetContext(ctx, &count, `SELECT count(*) FROM journal WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
