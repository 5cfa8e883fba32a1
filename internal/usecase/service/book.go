package service

import (
	"context"
	"errors"
	"strings"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

var ErrUnknownPublisher = errors.New("unknown publisher")

// Категория "all" в фильтре означает отсутствие фильтрации по категории
const CategoryAll = "all"

type Book struct {
	bookRepo  repo.Book
	assetRepo repo.Asset
	eventRepo repo.RecordEvent
}

func NewBook(bookRepo repo.Book, assetRepo repo.Asset, eventRepo repo.RecordEvent) usecase.Book {
	return &Book{
		bookRepo:  bookRepo,
		assetRepo: assetRepo,
		eventRepo: eventRepo,
	}
}

func (b *Book) SubmitBook(ctx context.Context, req *entity.SubmitBookRequest) (*entity.SubmitResult, error) {
	if req.UserID == 0 {
		return nil, entity.ErrNotAuthenticated
	}
	if err := req.IsValid(); err != nil {
		return nil, err
	}

	// В режиме редактирования запись должна существовать и принадлежать
	// пользователю; её URL ассетов переносятся, если новый файл не приложен
	var existing *entity.Book
	if req.BookID != "" {
		var err error
		existing, err = b.bookRepo.GetBook(ctx, req.BookID)
		if err != nil {
			return nil, err
		}
		if existing.UserID != req.UserID {
			return nil, repo.ErrRecordNotFound
		}
	}

	urls, err := uploadAssets(ctx, b.assetRepo, req.UserID, []assetUpload{
		{attachment: req.Cover, bucket: entity.BucketBookCovers, label: "cover", policy: entity.CoverPolicy},
		{attachment: req.Thumbnail, bucket: entity.BucketThumbnails, label: "thumb", policy: entity.ThumbnailPolicy},
	})
	if err != nil {
		return nil, err
	}
	coverURL, thumbnailURL := urls[0], urls[1]
	if existing != nil {
		if coverURL == nil {
			coverURL = existing.CoverImageURL
		}
		if thumbnailURL == nil {
			thumbnailURL = existing.ThumbnailURL
		}
	}

	book := ComposeBook(req.UserID, req.Form, coverURL, thumbnailURL)

	if existing != nil {
		book.ID = existing.ID
		if err := b.bookRepo.UpdateBook(ctx, book); err != nil {
			return nil, &entity.PersistenceError{Table: "book", Err: err}
		}
		publishRecordEvent(ctx, b.eventRepo, entity.RecordBook, entity.RecordUpdated, book.ID, req.UserID, book.Title)
	} else {
		id, err := b.bookRepo.AddBook(ctx, book)
		if err != nil {
			return nil, &entity.PersistenceError{Table: "book", Err: err}
		}
		book.ID = id
		publishRecordEvent(ctx, b.eventRepo, entity.RecordBook, entity.RecordCreated, book.ID, req.UserID, book.Title)
	}

	return &entity.SubmitResult{
		ID:         book.ID,
		RedirectTo: redirectTarget(req.FromPublisher),
	}, nil
}

func (b *Book) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	return b.bookRepo.GetBook(ctx, id)
}

func (b *Book) GetPublisherBooks(ctx context.Context, req *entity.PublisherBooksRequest) (*entity.PublisherBooksResponse, error) {
	name, ok := entity.ResolvePublisher(req.PublisherSlug)
	if !ok {
		return nil, ErrUnknownPublisher
	}
	books, err := b.bookRepo.GetBooksByPublisher(ctx, name)
	if err != nil {
		return nil, err
	}

	filtered := filterBooks(books, req.Search, req.Category)
	resp := &entity.PublisherBooksResponse{
		Publisher: name,
		Books:     filtered,
	}
	// Пустой результат до фильтрации и после неё — разные сообщения
	if len(filtered) == 0 {
		if len(books) == 0 {
			resp.Message = "no records yet"
		} else {
			resp.Message = "no records match your search"
		}
	}
	return resp, nil
}

// filterBooks применяет поисковый и категорийный фильтры, не изменяя
// исходный набор. Книга проходит, если поисковая строка пуста либо входит
// без учёта регистра в название, автора или описание, и при этом категория
// совпадает (или фильтр категории равен "all" / пуст).
func filterBooks(books []*entity.Book, search, category string) []*entity.Book {
	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]*entity.Book, 0, len(books))
	for _, book := range books {
		if search != "" && !matchesSearch(book, search) {
			continue
		}
		if category != "" && category != CategoryAll && !matchesCategory(book, category) {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}

func matchesSearch(book *entity.Book, search string) bool {
	if strings.Contains(strings.ToLower(book.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Author), search) {
		return true
	}
	if book.Description != nil && strings.Contains(strings.ToLower(*book.Description), search) {
		return true
	}
	return false
}

func matchesCategory(book *entity.Book, category string) bool {
	return book.Category != nil && *book.Category == category
}
