package domain

import "errors"

// Терминальные ошибки анализа одного документа. Повторная попытка
// детерминированного разбора тех же байт не меняет результат, поэтому
// ни одна из них не ретраится.
var (
	// ErrEmptyInput — входной документ пуст.
	ErrEmptyInput = errors.New("empty input document")

	// ErrFormatNotRecognized — ни одна стратегия извлечения не дала сообщений.
	ErrFormatNotRecognized = errors.New("chat export format not recognized")

	// ErrMalformedDocument — дерево документа не удалось построить.
	ErrMalformedDocument = errors.New("malformed document")
)
