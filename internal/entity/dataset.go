package entity

import (
	"errors"
	"strings"
	"time"
)

type Dataset struct {
	ID              string    `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	DataType        *string   `json:"data_type" db:"data_type"`
	FileFormat      *string   `json:"file_format" db:"file_format"`
	SizeMB          *float64  `json:"size_mb" db:"size_mb"`
	Keywords        []string  `json:"keywords" db:"keywords"`
	License         *string   `json:"license" db:"license"`
	Version         *string   `json:"version" db:"version"`
	AccessLevel     string    `json:"access_level" db:"access_level"`
	DOI             *string   `json:"doi" db:"doi"`
	Citation        *string   `json:"citation" db:"citation"`
	ThumbnailURL    *string   `json:"thumbnail_url" db:"thumbnail_url"`
	DatasetURL      *string   `json:"dataset_url" db:"dataset_url"`
	ContributorName *string   `json:"contributor_name" db:"contributor_name"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type DatasetForm struct {
	Title           string `form:"title"`
	Description     string `form:"description"`
	DataType        string `form:"data_type"`
	FileFormat      string `form:"file_format"`
	SizeMB          string `form:"size_mb"`
	Keywords        string `form:"keywords"`
	License         string `form:"license"`
	Version         string `form:"version"`
	AccessLevel     string `form:"access_level"`
	DOI             string `form:"doi"`
	Citation        string `form:"citation"`
	ContributorName string `form:"contributor_name"`
}

type SubmitDatasetRequest struct {
	UserID        int
	Form          DatasetForm
	Thumbnail     *Attachment
	DatasetFile   *Attachment
	FromPublisher string
}

func (r *SubmitDatasetRequest) IsValid() error {
	if strings.TrimSpace(r.Form.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Form.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}
