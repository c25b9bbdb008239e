package extract

import (
	"log/slog"

	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/ports"
)

// strategy — контракт одной стратегии извлечения в каскаде.
type strategy interface {
	// label возвращает метку формата для метаданных результата.
	label() string
	// tryExtract возвращает сообщения-кандидаты или пустой список,
	// если разметка стратегии не соответствует.
	tryExtract(doc *domain.ParsedDocument) []domain.RawMessage
}

// CascadeExtractor реализует интерфейс Extractor как упорядоченный каскад
// стратегий: выигрывает первая, давшая хотя бы одно сообщение.
type CascadeExtractor struct {
	strategies []strategy
	log        *slog.Logger
}

// NewCascadeExtractor создает каскад с фиксированным порядком стратегий.
// Эвристический date-scan намеренно стоит после классовой стратегии Meta:
// он оптимизирован на полноту, а не на точность.
func NewCascadeExtractor() ports.Extractor {
	return &CascadeExtractor{
		strategies: []strategy{
			instagramStrategy{},
			dateScanStrategy{},
			telegramStrategy{},
		},
		log: slog.Default(),
	}
}

// Extract пробует стратегии по порядку и возвращает результат первой
// непустой. Если все стратегии дали ноль сообщений, формат не распознан —
// повторных попыток не делается.
func (e *CascadeExtractor) Extract(doc *domain.ParsedDocument) ([]domain.RawMessage, string, error) {
	for _, s := range e.strategies {
		messages := s.tryExtract(doc)
		if len(messages) > 0 {
			e.log.Debug("Стратегия извлечения сработала", "format", s.label(), "messages", len(messages))
			return messages, s.label(), nil
		}
		e.log.Debug("Стратегия извлечения не дала сообщений", "format", s.label())
	}

	return nil, "", domain.ErrFormatNotRecognized
}
