package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/ports"
)

// ExcelExporter реализует интерфейс Exporter: пишет отчет в книгу .xlsx
// с листом-сводкой и листом по отправителям.
type ExcelExporter struct {
	path string
	log  *slog.Logger
}

// NewExcelExporter создает экспортер, пишущий в файл по указанному пути.
func NewExcelExporter(path string) ports.Exporter {
	return &ExcelExporter{path: path, log: slog.Default()}
}

// Export записывает отчет анализа в книгу Excel.
func (e *ExcelExporter) Export(result *domain.ChatAnalysisResult) error {
	if result == nil {
		return fmt.Errorf("результат анализа не задан")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.log.Error("failed to close excel file", "error", err)
		}
	}()

	if err := e.writeSummary(f, result); err != nil {
		return err
	}
	if err := e.writeSenders(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save excel file %s: %w", e.path, err)
	}

	e.log.Info("Отчет сохранен в Excel", "path", e.path, "senders", len(result.Senders))
	return nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, result *domain.ChatAnalysisResult) error {
	const sheetName = "Сводка"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}
	f.SetActiveSheet(index)

	rows := [][2]any{
		{"Файл", result.FileName},
		{"Формат", result.Format},
		{"Всего сообщений", result.TotalMessages},
		{"Первое сообщение", result.FirstMessageAt.Format("2006-01-02 15:04")},
		{"Последнее сообщение", result.LastMessageAt.Format("2006-01-02 15:04")},
		{"Активных дней", result.ActiveDays},
		{"Доля активных дней, %", result.ActiveDaysPct},
		{"Самая длинная серия дней", result.LongestDayStreak},
		{"Самый длинный разрыв, дней", result.LongestGapDays},
		{"Самый активный день", result.BusiestDay},
		{"Сообщений в нем", result.BusiestDayCount},
		{"Самый активный месяц", result.BusiestMonth},
	}

	for i, row := range rows {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row[0]); err != nil {
			return fmt.Errorf("failed to write summary cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row[1]); err != nil {
			return fmt.Errorf("failed to write summary cell: %w", err)
		}
	}

	return nil
}

func (e *ExcelExporter) writeSenders(f *excelize.File, result *domain.ChatAnalysisResult) error {
	const sheetName = "Отправители"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
	}

	headers := []string{
		"Имя", "Сообщений", "Вложений", "Рилсов", "Средняя длина",
		"Средний ответ, мин", "Быстрейший ответ, с", "Медленнейший ответ, мин",
		"Серия подряд", "Инициаций",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, sender := range result.Senders {
		row := i + 2
		values := []any{
			sender.Name, sender.Messages, sender.Attachments, sender.Reels,
			sender.AvgMessageLength, sender.AvgReplyMinutes,
			sender.FastestReplySeconds, sender.SlowestReplyMinutes,
			sender.LongestStreak, sender.Initiations,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write sender row: %w", err)
			}
		}
	}

	return nil
}
