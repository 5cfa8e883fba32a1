package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarpress-backend/internal/entity"
)

func validDatasetForm() entity.DatasetForm {
	return entity.DatasetForm{
		Title:       "City Air Quality 2025",
		Description: "Hourly PM2.5 readings across districts",
	}
}

func datasetFile(size int64) *entity.Attachment {
	return &entity.Attachment{
		FileName: "readings.csv",
		Size:     size,
		MimeType: "text/csv",
		RawBytes: bytes.NewReader([]byte("ts,value\n")),
	}
}

func TestSubmitDatasetUploadsInOrder(t *testing.T) {
	// Сначала превью в thumbnails, затем файл данных в dataset-files
	datasetRepo := &mockDatasetRepo{
		addFn: func(_ context.Context, dataset *entity.Dataset) (string, error) {
			require.NotNil(t, dataset.ThumbnailURL)
			require.NotNil(t, dataset.DatasetURL)
			return "dataset-1", nil
		},
	}
	assetRepo := &mockAssetRepo{}
	uc := NewDataset(datasetRepo, assetRepo, nil)

	result, err := uc.SubmitDataset(context.Background(), &entity.SubmitDatasetRequest{
		UserID: 4,
		Form:   validDatasetForm(),
		Thumbnail: &entity.Attachment{
			FileName: "preview.png",
			Size:     entity.MB,
			MimeType: "image/png",
			RawBytes: bytes.NewReader([]byte("png")),
		},
		DatasetFile: datasetFile(10 * entity.MB),
	})

	require.NoError(t, err)
	assert.Equal(t, "dataset-1", result.ID)
	require.Len(t, assetRepo.uploads, 2)
	assert.Equal(t, entity.BucketThumbnails, assetRepo.uploads[0].Bucket)
	assert.Equal(t, entity.BucketDatasetFiles, assetRepo.uploads[1].Bucket)
}

func TestSubmitDatasetFileAnyTypeAccepted(t *testing.T) {
	// Файл данных не ограничен по типу, только по размеру
	datasetRepo := &mockDatasetRepo{}
	assetRepo := &mockAssetRepo{}
	uc := NewDataset(datasetRepo, assetRepo, nil)

	_, err := uc.SubmitDataset(context.Background(), &entity.SubmitDatasetRequest{
		UserID: 4,
		Form:   validDatasetForm(),
		DatasetFile: &entity.Attachment{
			FileName: "archive.zip",
			Size:     49 * entity.MB,
			MimeType: "application/zip",
			RawBytes: bytes.NewReader([]byte("PK")),
		},
	})

	require.NoError(t, err)
	require.Len(t, assetRepo.uploads, 1)
	assert.Equal(t, entity.BucketDatasetFiles, assetRepo.uploads[0].Bucket)
}

func TestSubmitDatasetFileTooLarge(t *testing.T) {
	datasetRepo := &mockDatasetRepo{}
	assetRepo := &mockAssetRepo{}
	uc := NewDataset(datasetRepo, assetRepo, nil)

	_, err := uc.SubmitDataset(context.Background(), &entity.SubmitDatasetRequest{
		UserID:      4,
		Form:        validDatasetForm(),
		DatasetFile: datasetFile(51 * entity.MB),
	})

	var validationErr *entity.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, entity.ReasonTooLarge, validationErr.Reason)
	assert.Empty(t, assetRepo.uploads)
	assert.Equal(t, 0, datasetRepo.addCalls)
}

func TestSubmitDatasetSecondUploadFailureLeavesFirst(t *testing.T) {
	// Сбой на файле данных после успешного превью: превью остаётся сиротой
	datasetRepo := &mockDatasetRepo{}
	assetRepo := &mockAssetRepo{
		uploadFn: func(_ context.Context, bucket, _ string, _ io.Reader, _ int64, _ string) error {
			if bucket == entity.BucketDatasetFiles {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	uc := NewDataset(datasetRepo, assetRepo, nil)

	_, err := uc.SubmitDataset(context.Background(), &entity.SubmitDatasetRequest{
		UserID: 4,
		Form:   validDatasetForm(),
		Thumbnail: &entity.Attachment{
			FileName: "preview.png",
			Size:     entity.MB,
			MimeType: "image/png",
			RawBytes: bytes.NewReader([]byte("png")),
		},
		DatasetFile: datasetFile(10 * entity.MB),
	})

	var uploadErr *entity.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, entity.BucketDatasetFiles, uploadErr.Bucket)
	require.Len(t, assetRepo.uploads, 1)
	assert.Equal(t, entity.BucketThumbnails, assetRepo.uploads[0].Bucket)
	assert.Equal(t, 0, datasetRepo.addCalls)
}

func TestSubmitDatasetMissingDescription(t *testing.T) {
	uc := NewDataset(&mockDatasetRepo{}, &mockAssetRepo{}, nil)

	_, err := uc.SubmitDataset(context.Background(), &entity.SubmitDatasetRequest{
		UserID: 4,
		Form:   entity.DatasetForm{Title: "City Air Quality 2025"},
	})

	require.EqualError(t, err, "description is required")
}
