package service

import (
	"context"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

type Journal struct {
	journalRepo repo.Journal
	assetRepo   repo.Asset
	eventRepo   repo.RecordEvent
}

func NewJournal(journalRepo repo.Journal, assetRepo repo.Asset, eventRepo repo.RecordEvent) usecase.Journal {
	return &Journal{
		journalRepo: journalRepo,
		assetRepo:   assetRepo,
		eventRepo:   eventRepo,
	}
}

func (j *Journal) SubmitJournal(ctx context.Context, req *entity.SubmitJournalRequest) (*entity.SubmitResult, error) {
	if req.UserID == 0 {
		return nil, entity.ErrNotAuthenticated
	}
	if err := req.IsValid(); err != nil {
		return nil, err
	}

	urls, err := uploadAssets(ctx, j.assetRepo, req.UserID, []assetUpload{
		{attachment: req.Thumbnail, bucket: entity.BucketThumbnails, label: "journal", policy: entity.ThumbnailPolicy},
	})
	if err != nil {
		return nil, err
	}

	journal := ComposeJournal(req.UserID, req.Form, urls[0])
	id, err := j.journalRepo.AddJournal(ctx, journal)
	if err != nil {
		return nil, &entity.PersistenceError{Table: "journal", Err: err}
	}
	publishRecordEvent(ctx, j.eventRepo, entity.RecordJournal, entity.RecordCreated, id, req.UserID, journal.Title)

	return &entity.SubmitResult{
		ID:         id,
		RedirectTo: redirectTarget(req.FromPublisher),
	}, nil
}

func (j *Journal) GetJournal(ctx context.Context, id string) (*entity.Journal, error) {
	return j.journalRepo.GetJournal(ctx, id)
}
