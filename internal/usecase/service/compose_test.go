package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarpress-backend/internal/entity"
)

func TestNullableText(t *testing.T) {
	assert.Nil(t, nullableText(""))
	assert.Nil(t, nullableText("   "))

	v := nullableText(" 978-3-16-148410-0 ")
	require.NotNil(t, v)
	assert.Equal(t, "978-3-16-148410-0", *v)
}

func TestNullableInt(t *testing.T) {
	assert.Nil(t, nullableInt(""))
	// нарушение договорённости о числовом виджете — значение отсутствует
	assert.Nil(t, nullableInt("abc"))

	v := nullableInt("2025")
	require.NotNil(t, v)
	assert.Equal(t, 2025, *v)
}

func TestNullableFloat(t *testing.T) {
	assert.Nil(t, nullableFloat(""))

	v := nullableFloat("29.99")
	require.NotNil(t, v)
	assert.InDelta(t, 29.99, *v, 1e-9)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	// список из одних пустых элементов даёт nil, а не пустой срез
	assert.Nil(t, splitList(" , ,  "))

	items := splitList("John Doe, Jane Smith ,Robert Johnson")
	assert.Equal(t, []string{"John Doe", "Jane Smith", "Robert Johnson"}, items)
}

func TestComposeBookDefaults(t *testing.T) {
	book := ComposeBook(7, entity.BookForm{
		Title:     "Intro to Systems",
		Author:    "A. Engineer",
		Publisher: "Dhara Publications",
	}, nil, nil)

	assert.Equal(t, 7, book.UserID)
	assert.Equal(t, "Intro to Systems", book.Title)
	assert.Equal(t, "English", book.Language)
	assert.Nil(t, book.ISBN)
	assert.Nil(t, book.Description)
	assert.Nil(t, book.PublicationYear)
	assert.Nil(t, book.PageCount)
	assert.Nil(t, book.Price)
	assert.Nil(t, book.CoverImageURL)
	assert.Nil(t, book.ThumbnailURL)
}

func TestComposeBookTypedFields(t *testing.T) {
	coverURL := "https://storage.test/book-covers/7-1-cover.png"
	book := ComposeBook(7, entity.BookForm{
		Title:           "Intro to Systems",
		Author:          "A. Engineer",
		Publisher:       "Dhara Publications",
		PublicationYear: "2024",
		PageCount:       "350",
		Price:           "29.99",
		Language:        "German",
	}, &coverURL, nil)

	require.NotNil(t, book.PublicationYear)
	assert.Equal(t, 2024, *book.PublicationYear)
	require.NotNil(t, book.PageCount)
	assert.Equal(t, 350, *book.PageCount)
	require.NotNil(t, book.Price)
	assert.InDelta(t, 29.99, *book.Price, 1e-9)
	assert.Equal(t, "German", book.Language)
	require.NotNil(t, book.CoverImageURL)
	assert.Equal(t, coverURL, *book.CoverImageURL)
}

func TestComposeJournalDefaults(t *testing.T) {
	journal := ComposeJournal(3, entity.JournalForm{
		Title:       "On Caching",
		Authors:     "John Doe, Jane Smith",
		JournalName: "Nature",
	}, nil)

	assert.Equal(t, []string{"John Doe", "Jane Smith"}, journal.Authors)
	assert.Nil(t, journal.KeywordsList)
	assert.Equal(t, 0, journal.CitationsCount)
	assert.Nil(t, journal.ImpactFactor)
	assert.False(t, journal.OpenAccess)
	// рецензирование включено по умолчанию
	assert.True(t, journal.PeerReviewed)
	assert.Nil(t, journal.PublicationDate)
}

func TestComposeJournalFlagsAndDate(t *testing.T) {
	journal := ComposeJournal(3, entity.JournalForm{
		Title:           "On Caching",
		Authors:         "John Doe",
		JournalName:     "Nature",
		PublicationDate: "2024-06-15",
		OpenAccess:      "true",
		PeerReviewed:    "false",
		CitationsCount:  "12",
	}, nil)

	require.NotNil(t, journal.PublicationDate)
	assert.Equal(t, "2024-06-15", journal.PublicationDate.Format("2006-01-02"))
	assert.True(t, journal.OpenAccess)
	assert.False(t, journal.PeerReviewed)
	assert.Equal(t, 12, journal.CitationsCount)
}

func TestComposeDatasetDefaults(t *testing.T) {
	dataset := ComposeDataset(5, entity.DatasetForm{
		Title:       "Sensor Readings",
		Description: "Hourly sensor data",
		Keywords:    " , ",
	}, nil, nil)

	assert.Equal(t, "Public", dataset.AccessLevel)
	assert.Nil(t, dataset.Keywords)
	assert.Nil(t, dataset.SizeMB)
	assert.Nil(t, dataset.DatasetURL)
	assert.Nil(t, dataset.ContributorName)
}
