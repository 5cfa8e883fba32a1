package entity

import "io"

// Attachment — файл, выбранный пользователем и ещё не загруженный в хранилище.
// Живёт только между выбором файла и успешной загрузкой.
type Attachment struct {
	FileName string
	Size     int64
	MimeType string
	RawBytes io.Reader
}

// AttachmentPolicy задаёт ограничения на вложение до загрузки.
type AttachmentPolicy struct {
	MaxSizeBytes       int64
	AcceptedTypePrefix string
}

const MB = 1 << 20

// Политики по классам ассетов. Лимиты совпадают с формами загрузки:
// обложка до 5 МБ, превью до 2 МБ, файл датасета до 50 МБ без ограничения типа.
var (
	CoverPolicy       = AttachmentPolicy{MaxSizeBytes: 5 * MB, AcceptedTypePrefix: "image/"}
	ThumbnailPolicy   = AttachmentPolicy{MaxSizeBytes: 2 * MB, AcceptedTypePrefix: "image/"}
	DatasetFilePolicy = AttachmentPolicy{MaxSizeBytes: 50 * MB}
)

// Имена бакетов по классам ассетов
const (
	BucketBookCovers   = "book-covers"
	BucketThumbnails   = "thumbnails"
	BucketDatasetFiles = "dataset-files"
)
