package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

// --- моки репозиториев для unit-тестов ---

type mockBookRepo struct {
	addFn            func(ctx context.Context, book *entity.Book) (string, error)
	updateFn         func(ctx context.Context, book *entity.Book) error
	getFn            func(ctx context.Context, id string) (*entity.Book, error)
	byPublisherFn    func(ctx context.Context, publisher string) ([]*entity.Book, error)
	countPublisherFn func(ctx context.Context, publisher string, since time.Time) (int, int, error)
	countUserFn      func(ctx context.Context, userID int) (int, error)

	addCalls    int
	updateCalls int
}

func (m *mockBookRepo) AddBook(ctx context.Context, book *entity.Book) (string, error) {
	m.addCalls++
	if m.addFn != nil {
		return m.addFn(ctx, book)
	}
	return "book-1", nil
}

func (m *mockBookRepo) UpdateBook(ctx context.Context, book *entity.Book) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, book)
	}
	return nil
}

func (m *mockBookRepo) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, repo.ErrRecordNotFound
}

func (m *mockBookRepo) GetBooksByPublisher(ctx context.Context, publisher string) ([]*entity.Book, error) {
	if m.byPublisherFn != nil {
		return m.byPublisherFn(ctx, publisher)
	}
	return nil, nil
}

func (m *mockBookRepo) CountBooksByPublisher(ctx context.Context, publisher string, since time.Time) (int, int, error) {
	if m.countPublisherFn != nil {
		return m.countPublisherFn(ctx, publisher, since)
	}
	return 0, 0, nil
}

func (m *mockBookRepo) CountBooksByUser(ctx context.Context, userID int) (int, error) {
	if m.countUserFn != nil {
		return m.countUserFn(ctx, userID)
	}
	return 0, nil
}

type mockJournalRepo struct {
	addFn       func(ctx context.Context, journal *entity.Journal) (string, error)
	getFn       func(ctx context.Context, id string) (*entity.Journal, error)
	countUserFn func(ctx context.Context, userID int) (int, error)

	addCalls int
}

func (m *mockJournalRepo) AddJournal(ctx context.Context, journal *entity.Journal) (string, error) {
	m.addCalls++
	if m.addFn != nil {
		return m.addFn(ctx, journal)
	}
	return "journal-1", nil
}

func (m *mockJournalRepo) GetJournal(ctx context.Context, id string) (*entity.Journal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, repo.ErrRecordNotFound
}

func (m *mockJournalRepo) CountJournalsByUser(ctx context.Context, userID int) (int, error) {
	if m.countUserFn != nil {
		return m.countUserFn(ctx, userID)
	}
	return 0, nil
}

type mockDatasetRepo struct {
	addFn       func(ctx context.Context, dataset *entity.Dataset) (string, error)
	getFn       func(ctx context.Context, id string) (*entity.Dataset, error)
	countUserFn func(ctx context.Context, userID int) (int, error)

	addCalls int
}

func (m *mockDatasetRepo) AddDataset(ctx context.Context, dataset *entity.Dataset) (string, error) {
	m.addCalls++
	if m.addFn != nil {
		return m.addFn(ctx, dataset)
	}
	return "dataset-1", nil
}

func (m *mockDatasetRepo) GetDataset(ctx context.Context, id string) (*entity.Dataset, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, repo.ErrRecordNotFound
}

func (m *mockDatasetRepo) CountDatasetsByUser(ctx context.Context, userID int) (int, error) {
	if m.countUserFn != nil {
		return m.countUserFn(ctx, userID)
	}
	return 0, nil
}

type uploadedObject struct {
	Bucket string
	Key    string
}

// mockAssetRepo записывает все загрузки по порядку
type mockAssetRepo struct {
	uploadFn func(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error

	uploads []uploadedObject
}

func (m *mockAssetRepo) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	if m.uploadFn != nil {
		if err := m.uploadFn(ctx, bucket, key, r, size, contentType); err != nil {
			return err
		}
	}
	m.uploads = append(m.uploads, uploadedObject{Bucket: bucket, Key: key})
	return nil
}

func (m *mockAssetRepo) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://storage.test/%s/%s", bucket, key)
}

type mockEventRepo struct {
	published []*entity.RecordEvent
}

func (m *mockEventRepo) PublishRecordEvent(_ context.Context, event *entity.RecordEvent) error {
	m.published = append(m.published, event)
	return nil
}

func (m *mockEventRepo) SubscribeRecordEvents(_ context.Context) (<-chan *entity.RecordEvent, error) {
	ch := make(chan *entity.RecordEvent)
	close(ch)
	return ch, nil
}
