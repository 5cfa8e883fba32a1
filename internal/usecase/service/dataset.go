package service

import (
	"context"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

type Dataset struct {
	datasetRepo repo.Dataset
	assetRepo   repo.Asset
	eventRepo   repo.RecordEvent
}

func NewDataset(datasetRepo repo.Dataset, assetRepo repo.Asset, eventRepo repo.RecordEvent) usecase.Dataset {
	return &Dataset{
		datasetRepo: datasetRepo,
		assetRepo:   assetRepo,
		eventRepo:   eventRepo,
	}
}

func (d *Dataset) SubmitDataset(ctx context.Context, req *entity.SubmitDatasetRequest) (*entity.SubmitResult, error) {
	if req.UserID == 0 {
		return nil, entity.ErrNotAuthenticated
	}
	if err := req.IsValid(); err != nil {
		return nil, err
	}

	// Превью и файл данных грузятся последовательно в свои бакеты;
	// первый сбой прерывает отправку целиком
	urls, err := uploadAssets(ctx, d.assetRepo, req.UserID, []assetUpload{
		{attachment: req.Thumbnail, bucket: entity.BucketThumbnails, label: "dataset", policy: entity.ThumbnailPolicy},
		{attachment: req.DatasetFile, bucket: entity.BucketDatasetFiles, policy: entity.DatasetFilePolicy},
	})
	if err != nil {
		return nil, err
	}

	dataset := ComposeDataset(req.UserID, req.Form, urls[0], urls[1])
	id, err := d.datasetRepo.AddDataset(ctx, dataset)
	if err != nil {
		return nil, &entity.PersistenceError{Table: "dataset", Err: err}
	}
	publishRecordEvent(ctx, d.eventRepo, entity.RecordDataset, entity.RecordCreated, id, req.UserID, dataset.Title)

	return &entity.SubmitResult{
		ID:         id,
		RedirectTo: redirectTarget(req.FromPublisher),
	}, nil
}

func (d *Dataset) GetDataset(ctx context.Context, id string) (*entity.Dataset, error) {
	return d.datasetRepo.GetDataset(ctx, id)
}
