package service

import (
	"context"
	"time"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

type Publisher struct {
	bookRepo    repo.Book
	journalRepo repo.Journal
	datasetRepo repo.Dataset
}

func NewPublisher(bookRepo repo.Book, journalRepo repo.Journal, datasetRepo repo.Dataset) usecase.Publisher {
	return &Publisher{
		bookRepo:    bookRepo,
		journalRepo: journalRepo,
		datasetRepo: datasetRepo,
	}
}

func (p *Publisher) ListPublishers(ctx context.Context) ([]*entity.PublisherStats, error) {
	monthAgo := time.Now().AddDate(0, -1, 0)
	stats := make([]*entity.PublisherStats, 0, len(entity.Publishers))
	for _, pub := range entity.Publishers {
		total, recent, err := p.bookRepo.CountBooksByPublisher(ctx, pub.Name, monthAgo)
		if err != nil {
			return nil, err
		}
		stats = append(stats, &entity.PublisherStats{
			Slug:        pub.Slug,
			Name:        pub.Name,
			TotalBooks:  total,
			RecentBooks: recent,
		})
	}
	return stats, nil
}

func (p *Publisher) GetDashboardSummary(ctx context.Context, userID int) (*entity.DashboardSummary, error) {
	books, err := p.bookRepo.CountBooksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	journals, err := p.journalRepo.CountJournalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	datasets, err := p.datasetRepo.CountDatasetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.DashboardSummary{
		Books:    books,
		Journals: journals,
		Datasets: datasets,
	}, nil
}
