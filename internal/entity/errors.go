package entity

import (
	"errors"
	"fmt"
)

// Причины отклонения вложения локальным валидатором
const (
	ReasonTooLarge  = "too_large"
	ReasonWrongType = "wrong_type"
)

var (
	// ErrNotAuthenticated — нет активной сессии, загрузка не начинается
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoRowsAffected — запись в хранилище молча не применилась (например, нет прав).
	// Считается ошибкой персистентности, а не успехом.
	ErrNoRowsAffected = errors.New("no rows affected")
)

// ValidationError — локальное отклонение вложения до любой загрузки.
// Исправляется повторным выбором файла, в удалённые сервисы не уходит.
type ValidationError struct {
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

// UploadError — сбой записи в блоб-хранилище. Вся отправка прерывается,
// запись не создаётся; уже загруженные в этой отправке объекты остаются сиротами.
type UploadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload to %s/%s failed: %v", e.Bucket, e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError — сбой insert/update в таблице записей,
// включая случай нуля затронутых строк.
type PersistenceError struct {
	Table string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist into %s failed: %v", e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
