package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"chat-export-analyzer/internal/adapters/source"
	"chat-export-analyzer/internal/cache"
	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/pkg/config"
	"chat-export-analyzer/internal/ports"
)

// AnalyzeChatUseCase инкапсулирует бизнес-логику анализа файлов экспорта чата.
type AnalyzeChatUseCase struct {
	cfg        *config.Config
	parser     ports.Parser
	extractor  ports.Extractor
	analyzer   ports.Analyzer
	cacheStore *cache.CacheStore
}

// NewAnalyzeChatUseCase создает новый экземпляр AnalyzeChatUseCase.
func NewAnalyzeChatUseCase(
	cfg *config.Config,
	parser ports.Parser,
	extractor ports.Extractor,
	analyzer ports.Analyzer,
	cacheStore *cache.CacheStore,
) *AnalyzeChatUseCase {
	return &AnalyzeChatUseCase{
		cfg:        cfg,
		parser:     parser,
		extractor:  extractor,
		analyzer:   analyzer,
		cacheStore: cacheStore,
	}
}

// AnalyzeDocument анализирует один документ: разбор дерева, каскад
// стратегий извлечения, аналитический проход. Возвращает либо полный
// отчет, либо терминальную ошибку — частично заполненных результатов нет.
func (uc *AnalyzeChatUseCase) AnalyzeDocument(fileName string, data []byte) (*domain.ChatAnalysisResult, error) {
	key := cache.CalculateHash(data)
	if cachedItem, found := uc.cacheStore.Get(key); found {
		slog.Info("Попадание в кеш", "file", fileName, "hash", key)
		return cachedItem.Data, nil
	}

	doc, err := uc.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("не удалось разобрать документ %s: %w", fileName, err)
	}

	messages, format, err := uc.extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("не удалось извлечь сообщения из %s: %w", fileName, err)
	}
	slog.Info("Извлечены сообщения", "file", fileName, "format", format, "count", len(messages))

	result, err := uc.analyzer.Analyze(fileName, format, doc.NodeCount, messages)
	if err != nil {
		return nil, fmt.Errorf("не удалось проанализировать %s: %w", fileName, err)
	}

	uc.cacheStore.Put(key, result, uc.cfg.CacheTTL())
	return result, nil
}

// AnalyzeFiles обрабатывает пакет файлов. Неудача одного файла не
// прерывает пакет: результат каждого файла записывается отдельно, и
// вызывающая сторона сама агрегирует частичные неудачи.
func (uc *AnalyzeChatUseCase) AnalyzeFiles(ctx context.Context, filePaths []string) ([]domain.FileOutcome, error) {
	outcomes := make([]domain.FileOutcome, 0, len(filePaths))

	for _, filePath := range filePaths {
		if err := ctx.Err(); err != nil {
			return outcomes, fmt.Errorf("обработка пакета прервана: %w", err)
		}

		fileName := filepath.Base(filePath)
		slog.Info("Обработка файла", "path", filePath)

		data, err := source.NewCliSource(filePath).Fetch()
		if err != nil {
			outcomes = append(outcomes, domain.FileOutcome{FileName: fileName, Error: err.Error()})
			continue
		}

		result, err := uc.AnalyzeDocument(fileName, data)
		if err != nil {
			slog.Warn("Файл не обработан", "file", fileName, "error", err)
			outcomes = append(outcomes, domain.FileOutcome{FileName: fileName, Error: err.Error()})
			continue
		}

		outcomes = append(outcomes, domain.FileOutcome{FileName: fileName, Result: result})
	}

	return outcomes, nil
}
