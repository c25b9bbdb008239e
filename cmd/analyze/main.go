package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"chat-export-analyzer/internal/adapters/exporter"
	"chat-export-analyzer/internal/adapters/parser"
	"chat-export-analyzer/internal/cache"
	"chat-export-analyzer/internal/core/analysis"
	"chat-export-analyzer/internal/core/extract"
	"chat-export-analyzer/internal/pkg/config"
	"chat-export-analyzer/internal/pkg/logging"
	"chat-export-analyzer/internal/server/usecase"
)

func main() {
	var (
		xlsxPath string
		logLevel string
	)
	flag.StringVar(&xlsxPath, "xlsx", "", "Путь для сохранения отчета в Excel (опционально)")
	flag.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Уровень логирования: debug, info, warn, error")
	flag.Parse()

	filePaths := flag.Args()
	if len(filePaths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: analyze [flags] <file1> <file2> ...")
		os.Exit(1)
	}

	logging.Setup(logLevel)

	cfg := &config.Config{
		Processing: config.Processing{
			CacheTTLMinutes: config.DefaultCacheTTLMinutes,
		},
	}

	uc := usecase.NewAnalyzeChatUseCase(
		cfg,
		parser.NewHTMLParser(),
		extract.NewCascadeExtractor(),
		analysis.NewService(),
		cache.NewCacheStore(),
	)

	outcomes, err := uc.AnalyzeFiles(context.Background(), filePaths)
	if err != nil {
		slog.Error("batch analysis failed", "error", err)
		os.Exit(1)
	}

	console := exporter.NewConsoleExporter()
	parsed := 0
	for _, outcome := range outcomes {
		if outcome.Error != "" {
			fmt.Printf("--- %s: ошибка: %s\n", outcome.FileName, outcome.Error)
			continue
		}
		parsed++
		if err := console.Export(outcome.Result); err != nil {
			slog.Error("console export failed", "file", outcome.FileName, "error", err)
		}
		if xlsxPath != "" {
			excel := exporter.NewExcelExporter(excelPathFor(xlsxPath, outcome.FileName, len(outcomes)))
			if err := excel.Export(outcome.Result); err != nil {
				slog.Error("excel export failed", "file", outcome.FileName, "error", err)
			}
		}
	}

	fmt.Printf("Обработано файлов: %d из %d\n", parsed, len(outcomes))
	if parsed == 0 {
		os.Exit(1)
	}
}

// excelPathFor возвращает путь книги для одного файла: при единственном
// входном файле используется путь как есть, при нескольких — добавляется
// имя файла, чтобы книги не перезаписывали друг друга.
func excelPathFor(base, fileName string, total int) string {
	if total == 1 {
		return base
	}
	return fmt.Sprintf("%s.%s.xlsx", base, fileName)
}
