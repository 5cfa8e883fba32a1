package entity

import (
	"errors"
	"strings"
	"time"
)

type Book struct {
	ID              string    `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	Publisher       string    `json:"publisher" db:"publisher"`
	ISBN            *string   `json:"isbn" db:"isbn"`
	Description     *string   `json:"description" db:"description"`
	PublicationYear *int      `json:"publication_year" db:"publication_year"`
	Edition         *string   `json:"edition" db:"edition"`
	Language        string    `json:"language" db:"language"`
	PageCount       *int      `json:"page_count" db:"page_count"`
	Category        *string   `json:"category" db:"category"`
	Price           *float64  `json:"price" db:"price"`
	SubjectArea     *string   `json:"subject_area" db:"subject_area"`
	CoverImageURL   *string   `json:"cover_image_url" db:"cover_image_url"`
	ThumbnailURL    *string   `json:"thumbnail_url" db:"thumbnail_url"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// BookForm — сырые значения полей формы. Все поля строковые,
// типизация происходит в композере.
type BookForm struct {
	Title           string `form:"title"`
	Author          string `form:"author"`
	Publisher       string `form:"publisher"`
	ISBN            string `form:"isbn"`
	Description     string `form:"description"`
	PublicationYear string `form:"publication_year"`
	Edition         string `form:"edition"`
	Language        string `form:"language"`
	PageCount       string `form:"page_count"`
	Category        string `form:"category"`
	Price           string `form:"price"`
	SubjectArea     string `form:"subject_area"`
}

type SubmitBookRequest struct {
	UserID int
	// BookID непустой в режиме редактирования: вместо insert выполняется update,
	// а ранее сохранённые URL ассетов переносятся, если новый файл не приложен
	BookID        string
	Form          BookForm
	Cover         *Attachment
	Thumbnail     *Attachment
	FromPublisher string
}

func (r *SubmitBookRequest) IsValid() error {
	if strings.TrimSpace(r.Form.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Form.Author) == "" {
		return errors.New("author is required")
	}
	if strings.TrimSpace(r.Form.Publisher) == "" {
		return errors.New("publisher is required")
	}
	return nil
}

// SubmitResult — итог успешной отправки: идентификатор записи и адрес,
// на который клиенту следует перейти.
type SubmitResult struct {
	ID         string `json:"id"`
	RedirectTo string `json:"redirect_to"`
}

type PublisherBooksRequest struct {
	PublisherSlug string `query:"publisher"`
	Search        string `query:"search"`
	Category      string `query:"category"`
}

type PublisherBooksResponse struct {
	Publisher string  `json:"publisher"`
	Books     []*Book `json:"books"`
	// Message заполняется только при пустом результате и различает
	// "записей ещё нет" и "ничего не нашлось по фильтру"
	Message string `json:"message,omitempty"`
}
