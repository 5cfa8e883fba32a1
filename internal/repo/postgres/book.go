package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

type BookDB struct {
	db *sqlx.DB
}

func NewBook(db *sqlx.DB) repo.Book {
	return &BookDB{db: db}
}

func (b *BookDB) AddBook(ctx context.Context, book *entity.Book) (string, error) {
	query := `
		INSERT INTO book (
			user_id, title, author, publisher, isbn, description, publication_year,
			edition, language, page_count, category, price, subject_area,
			cover_image_url, thumbnail_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	var id string
	err := b.db.QueryRowContext(ctx, query,
		book.UserID,
		book.Title,
		book.Author,
		book.Publisher,
		book.ISBN,
		book.Description,
		book.PublicationYear,
		book.Edition,
		book.Language,
		book.PageCount,
		book.Category,
		book.Price,
		book.SubjectArea,
		book.CoverImageURL,
		book.ThumbnailURL,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (b *BookDB) UpdateBook(ctx context.Context, book *entity.Book) error {
	// Перезаписываем все редактируемые колонки: повторная отправка без изменений
	// записывает те же значения, URL ассетов не обнуляются случайно
	query, args, err := sq.Update("book").
		Set("title", book.Title).
		Set("author", book.Author).
		Set("publisher", book.Publisher).
		Set("isbn", book.ISBN).
		Set("description", book.Description).
		Set("publication_year", book.PublicationYear).
		Set("edition", book.Edition).
		Set("language", book.Language).
		Set("page_count", book.PageCount).
		Set("category", book.Category).
		Set("price", book.Price).
		Set("subject_area", book.SubjectArea).
		Set("cover_image_url", book.CoverImageURL).
		Set("thumbnail_url", book.ThumbnailURL).
		Where(sq.Eq{"id": book.ID, "user_id": book.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	res, err := b.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNoRowsAffected
	}
	return nil
}

func (b *BookDB) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	var book entity.Book
	query := `SELECT * FROM book WHERE id = $1`
	err := b.db.GetContext(ctx, &book, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrRecordNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (b *BookDB) GetBooksByPublisher(ctx context.Context, publisher string) ([]*entity.Book, error) {
	var books []*entity.Book
	query := `SELECT * FROM book WHERE publisher = $1 ORDER BY created_at DESC`
	err := b.db.SelectContext(ctx, &books, query, publisher)
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (b *BookDB) CountBooksByPublisher(ctx context.Context, publisher string, since time.Time) (int, int, error) {
	var total, recent int
	query := `
		SELECT count(*), count(*) FILTER (WHERE created_at > $2)
		FROM book WHERE publisher = $1
	`
	err := b.db.QueryRowContext(ctx, query, publisher, since).Scan(&total, &recent)
	if err != nil {
		return 0, 0, err
	}
	return total, recent, nil
}

func (b *BookDB) CountBooksByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := b.db.GetContext(ctx, &count, `SELECT count(*) FROM book WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
