package service

import (
	"strconv"
	"strings"
	"time"

	"scholarpress-backend/internal/entity"
)

// Компоновка записи из сырых строковых полей формы. Все функции чистые
// и тотальные: пустые необязательные поля уходят в NULL, а не в "",
// списки из одних пустых элементов — в NULL, а не в пустой массив.

func nullableText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nullableInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Числовые поля ограничены виджетом ввода; нарушение договорённости
		// приравниваем к отсутствию значения
		return nil
	}
	return &v
}

func nullableFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func nullableDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// splitList режет строку по запятым с обрезкой пробелов.
// Вход из одних пустых элементов даёт nil, не пустой срез.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

func defaulted(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func intOrZero(s string) int {
	v := nullableInt(s)
	if v == nil {
		return 0
	}
	return *v
}

func boolFlag(s string, def bool) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// ComposeBook собирает типизированную книгу из полей формы и уже
// разрешённых URL ассетов.
func ComposeBook(userID int, form entity.BookForm, coverURL, thumbnailURL *string) *entity.Book {
	return &entity.Book{
		UserID:          userID,
		Title:           strings.TrimSpace(form.Title),
		Author:          strings.TrimSpace(form.Author),
		Publisher:       strings.TrimSpace(form.Publisher),
		ISBN:            nullableText(form.ISBN),
		Description:     nullableText(form.Description),
		PublicationYear: nullableInt(form.PublicationYear),
		Edition:         nullableText(form.Edition),
		Language:        defaulted(form.Language, "English"),
		PageCount:       nullableInt(form.PageCount),
		Category:        nullableText(form.Category),
		Price:           nullableFloat(form.Price),
		SubjectArea:     nullableText(form.SubjectArea),
		CoverImageURL:   coverURL,
		ThumbnailURL:    thumbnailURL,
	}
}

func ComposeJournal(userID int, form entity.JournalForm, thumbnailURL *string) *entity.Journal {
	return &entity.Journal{
		UserID:          userID,
		Title:           strings.TrimSpace(form.Title),
		Authors:         splitList(form.Authors),
		JournalName:     strings.TrimSpace(form.JournalName),
		Volume:          nullableText(form.Volume),
		Issue:           nullableText(form.Issue),
		Pages:           nullableText(form.Pages),
		DOI:             nullableText(form.DOI),
		Abstract:        nullableText(form.Abstract),
		PublicationDate: nullableDate(form.PublicationDate),
		KeywordsList:    splitList(form.KeywordsList),
		CitationsCount:  intOrZero(form.CitationsCount),
		ImpactFactor:    nullableFloat(form.ImpactFactor),
		Category:        nullableText(form.Category),
		ThumbnailURL:    thumbnailURL,
		OpenAccess:      boolFlag(form.OpenAccess, false),
		PeerReviewed:    boolFlag(form.PeerReviewed, true),
	}
}

func ComposeDataset(userID int, form entity.DatasetForm, thumbnailURL, datasetURL *string) *entity.Dataset {
	return &entity.Dataset{
		UserID:          userID,
		Title:           strings.TrimSpace(form.Title),
		Description:     strings.TrimSpace(form.Description),
		DataType:        nullableText(form.DataType),
		FileFormat:      nullableText(form.FileFormat),
		SizeMB:          nullableFloat(form.SizeMB),
		Keywords:        splitList(form.Keywords),
		License:         nullableText(form.License),
		Version:         nullableText(form.Version),
		AccessLevel:     defaulted(form.AccessLevel, "Public"),
		DOI:             nullableText(form.DOI),
		Citation:        nullableText(form.Citation),
		ThumbnailURL:    thumbnailURL,
		DatasetURL:      datasetURL,
		ContributorName: nullableText(form.ContributorName),
	}
}
