package entity

import (
	"errors"
	"strings"
	"time"
)

type Journal struct {
	ID              string     `json:"id" db:"id"`
	UserID          int        `json:"user_id" db:"user_id"`
	Title           string     `json:"title" db:"title"`
	Authors         []string   `json:"authors" db:"authors"`
	JournalName     string     `json:"journal_name" db:"journal_name"`
	Volume          *string    `json:"volume" db:"volume"`
	Issue           *string    `json:"issue" db:"issue"`
	Pages           *string    `json:"pages" db:"pages"`
	DOI             *string    `json:"doi" db:"doi"`
	Abstract        *string    `json:"abstract" db:"abstract"`
	PublicationDate *time.Time `json:"publication_date" db:"publication_date"`
	KeywordsList    []string   `json:"keywords_list" db:"keywords_list"`
	CitationsCount  int        `json:"citations_count" db:"citations_count"`
	ImpactFactor    *float64   `json:"impact_factor" db:"impact_factor"`
	Category        *string    `json:"category" db:"category"`
	ThumbnailURL    *string    `json:"thumbnail_url" db:"thumbnail_url"`
	OpenAccess      bool       `json:"open_access" db:"open_access"`
	PeerReviewed    bool       `json:"peer_reviewed" db:"peer_reviewed"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

type JournalForm struct {
	Title           string `form:"title"`
	Authors         string `form:"authors"`
	JournalName     string `form:"journal_name"`
	Volume          string `form:"volume"`
	Issue           string `form:"issue"`
	Pages           string `form:"pages"`
	DOI             string `form:"doi"`
	Abstract        string `form:"abstract"`
	PublicationDate string `form:"publication_date"`
	KeywordsList    string `form:"keywords_list"`
	CitationsCount  string `form:"citations_count"`
	ImpactFactor    string `form:"impact_factor"`
	Category        string `form:"category"`
	OpenAccess      string `form:"open_access"`
	PeerReviewed    string `form:"peer_reviewed"`
}

type SubmitJournalRequest struct {
	UserID        int
	Form          JournalForm
	Thumbnail     *Attachment
	FromPublisher string
}

func (r *SubmitJournalRequest) IsValid() error {
	if strings.TrimSpace(r.Form.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Form.Authors) == "" {
		return errors.New("authors are required")
	}
	if strings.TrimSpace(r.Form.JournalName) == "" {
		return errors.New("journal name is required")
	}
	return nil
}
