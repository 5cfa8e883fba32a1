package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarpress-backend/internal/entity"
)

func validJournalForm() entity.JournalForm {
	return entity.JournalForm{
		Title:       "Advances in Materials",
		Authors:     "A. Engineer, B. Researcher",
		JournalName: "Journal of Applied Science",
	}
}

func TestSubmitJournalWithoutThumbnail(t *testing.T) {
	journalRepo := &mockJournalRepo{
		addFn: func(_ context.Context, journal *entity.Journal) (string, error) {
			assert.Nil(t, journal.ThumbnailURL)
			assert.Equal(t, []string{"A. Engineer", "B. Researcher"}, journal.Authors)
			return "journal-5", nil
		},
	}
	assetRepo := &mockAssetRepo{}
	eventRepo := &mockEventRepo{}
	uc := NewJournal(journalRepo, assetRepo, eventRepo)

	result, err := uc.SubmitJournal(context.Background(), &entity.SubmitJournalRequest{
		UserID: 3,
		Form:   validJournalForm(),
	})

	require.NoError(t, err)
	assert.Equal(t, "journal-5", result.ID)
	assert.Equal(t, "/dashboard", result.RedirectTo)
	assert.Empty(t, assetRepo.uploads)
	require.Len(t, eventRepo.published, 1)
	assert.Equal(t, entity.RecordJournal, eventRepo.published[0].Kind)
}

func TestSubmitJournalNotAuthenticated(t *testing.T) {
	uc := NewJournal(&mockJournalRepo{}, &mockAssetRepo{}, nil)

	_, err := uc.SubmitJournal(context.Background(), &entity.SubmitJournalRequest{
		Form: validJournalForm(),
	})

	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)
}

func TestSubmitJournalThumbnailUploaded(t *testing.T) {
	journalRepo := &mockJournalRepo{
		addFn: func(_ context.Context, journal *entity.Journal) (string, error) {
			require.NotNil(t, journal.ThumbnailURL)
			assert.Contains(t, *journal.ThumbnailURL, "/thumbnails/")
			return "journal-6", nil
		},
	}
	assetRepo := &mockAssetRepo{}
	uc := NewJournal(journalRepo, assetRepo, nil)

	_, err := uc.SubmitJournal(context.Background(), &entity.SubmitJournalRequest{
		UserID: 3,
		Form:   validJournalForm(),
		Thumbnail: &entity.Attachment{
			FileName: "issue.png",
			Size:     entity.MB,
			MimeType: "image/png",
			RawBytes: bytes.NewReader([]byte("png")),
		},
	})

	require.NoError(t, err)
	require.Len(t, assetRepo.uploads, 1)
	assert.Equal(t, entity.BucketThumbnails, assetRepo.uploads[0].Bucket)
}

func TestSubmitJournalOversizedThumbnail(t *testing.T) {
	journalRepo := &mockJournalRepo{}
	assetRepo := &mockAssetRepo{}
	uc := NewJournal(journalRepo, assetRepo, nil)

	_, err := uc.SubmitJournal(context.Background(), &entity.SubmitJournalRequest{
		UserID: 3,
		Form:   validJournalForm(),
		Thumbnail: &entity.Attachment{
			FileName: "issue.png",
			Size:     3 * entity.MB,
			MimeType: "image/png",
			RawBytes: bytes.NewReader([]byte("png")),
		},
	})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, entity.ReasonTooLarge, validationErr.Reason)
	assert.Empty(t, assetRepo.uploads)
	assert.Equal(t, 0, journalRepo.addCalls)
}

func TestSubmitJournalInsertFails(t *testing.T) {
	journalRepo := &mockJournalRepo{
		addFn: func(_ context.Context, _ *entity.Journal) (string, error) {
			return "", errors.New("relation does not exist")
		},
	}
	uc := NewJournal(journalRepo, &mockAssetRepo{}, nil)

	_, err := uc.SubmitJournal(context.Background(), &entity.SubmitJournalRequest{
		UserID: 3,
		Form:   validJournalForm(),
	})

	var persistenceErr *entity.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "journal", persistenceErr.Table)
}
