package sllist

import "github.com/nxlak/single-linked-list/internal/logging"

// Cloner создание копии значения для размещения в списке.
// Ошибка означает, что копию создать не удалось, и список остаётся нетронутым.
type Cloner[T any] func(v T) (T, error)

// Option настройка списка.
type Option[T any] func(l *List[T])

// WithCloner задаёт способ копирования значений при вставке и при копировании списка.
// По умолчанию значения копируются присваиванием.
func WithCloner[T any](clone func(v T) (T, error)) Option[T] {
	return func(l *List[T]) {
		l.clone = clone
	}
}

// WithLogger задаёт логгер событий списка.
func WithLogger[T any](log logging.Logger) Option[T] {
	return func(l *List[T]) {
		l.log = log
	}
}

// CloneBytes копирование слайса байтов, подходит как Cloner для списков []byte.
func CloneBytes(data []byte) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	res := make([]byte, len(data))
	copy(res, data)

	return res, nil
}
