package ports

import (
	"chat-export-analyzer/internal/domain"
)

// DataSource определяет интерфейс для получения исходных данных документа.
type DataSource interface {
	// Fetch загружает данные из источника и возвращает их в виде байтового среза.
	Fetch() ([]byte, error)
}

// Parser определяет интерфейс для разбора сырых байт в дерево документа.
type Parser interface {
	// Parse строит навигируемое дерево документа из сырых данных.
	Parse(data []byte) (*domain.ParsedDocument, error)
}

// Extractor определяет интерфейс каскада стратегий извлечения сообщений.
type Extractor interface {
	// Extract возвращает извлеченные сообщения и метку сработавшего формата.
	// Если ни одна стратегия не дала сообщений, возвращается
	// domain.ErrFormatNotRecognized.
	Extract(doc *domain.ParsedDocument) ([]domain.RawMessage, string, error)
}

// Analyzer определяет интерфейс аналитического прохода по сообщениям.
type Analyzer interface {
	// Analyze строит полный статистический профиль по списку сообщений.
	Analyze(fileName, format string, nodeCount int, messages []domain.RawMessage) (*domain.ChatAnalysisResult, error)
}

// Exporter определяет интерфейс для вывода итогового отчета.
type Exporter interface {
	// Export принимает готовый отчет и выводит его.
	Export(result *domain.ChatAnalysisResult) error
}
