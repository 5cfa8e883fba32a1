package repo

import (
	"context"
	"io"
)

// Asset — блоб-хранилище ассетов. Upload выполняет долговременную запись
// объекта; она не транзакционна с последующей записью строки в таблицу.
type Asset interface {
	// Upload записывает объект в бакет под заданным ключом
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	// PublicURL возвращает публичный адрес объекта
	PublicURL(bucket, key string) string
}
