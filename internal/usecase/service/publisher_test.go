package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarpress-backend/internal/entity"
)

func TestListPublishersCoversRoster(t *testing.T) {
	counts := map[string][2]int{
		"Dhara Publications":    {12, 3},
		"Yar Tech Publications": {5, 0},
	}
	bookRepo := &mockBookRepo{
		countPublisherFn: func(_ context.Context, publisher string, since time.Time) (int, int, error) {
			// Окно "недавних" книг — последний месяц
			assert.WithinDuration(t, time.Now().AddDate(0, -1, 0), since, time.Minute)
			c := counts[publisher]
			return c[0], c[1], nil
		},
	}
	uc := NewPublisher(bookRepo, &mockJournalRepo{}, &mockDatasetRepo{})

	stats, err := uc.ListPublishers(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, len(entity.Publishers))
	bySlug := make(map[string]*entity.PublisherStats, len(stats))
	for _, s := range stats {
		bySlug[s.Slug] = s
	}
	require.Contains(t, bySlug, "dhara-publications")
	assert.Equal(t, 12, bySlug["dhara-publications"].TotalBooks)
	assert.Equal(t, 3, bySlug["dhara-publications"].RecentBooks)
	assert.Equal(t, 5, bySlug["yar-tech"].TotalBooks)
}

func TestListPublishersCountFails(t *testing.T) {
	bookRepo := &mockBookRepo{
		countPublisherFn: func(_ context.Context, _ string, _ time.Time) (int, int, error) {
			return 0, 0, errors.New("connection refused")
		},
	}
	uc := NewPublisher(bookRepo, &mockJournalRepo{}, &mockDatasetRepo{})

	_, err := uc.ListPublishers(context.Background())

	assert.Error(t, err)
}

func TestGetDashboardSummary(t *testing.T) {
	bookRepo := &mockBookRepo{
		countUserFn: func(_ context.Context, userID int) (int, error) {
			assert.Equal(t, 7, userID)
			return 4, nil
		},
	}
	journalRepo := &mockJournalRepo{
		countUserFn: func(_ context.Context, _ int) (int, error) { return 2, nil },
	}
	datasetRepo := &mockDatasetRepo{
		countUserFn: func(_ context.Context, _ int) (int, error) { return 1, nil },
	}
	uc := NewPublisher(bookRepo, journalRepo, datasetRepo)

	summary, err := uc.GetDashboardSummary(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardSummary{Books: 4, Journals: 2, Datasets: 1}, summary)
}

func TestResolvePublisherRoster(t *testing.T) {
	name, ok := entity.ResolvePublisher("yar-tech")
	require.True(t, ok)
	assert.Equal(t, "Yar Tech Publications", name)

	_, ok = entity.ResolvePublisher("")
	assert.False(t, ok)

	_, ok = entity.ResolvePublisher("unknown-press")
	assert.False(t, ok)
}
