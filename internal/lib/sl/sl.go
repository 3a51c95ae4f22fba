// Package sl — мелкие помощники для slog. Все обработчики и сервисы
// платформы логируют ошибки одним и тем же атрибутом "error", чтобы по
// нему можно было фильтровать записи.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error":
//
//	log.Error("failed to create subscription", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
