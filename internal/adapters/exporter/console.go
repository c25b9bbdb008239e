package exporter

import (
	"fmt"

	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/ports"
)

// ConsoleExporter реализует интерфейс Exporter для вывода отчета в консоль.
type ConsoleExporter struct{}

// NewConsoleExporter создает новый экземпляр ConsoleExporter.
func NewConsoleExporter() ports.Exporter {
	return &ConsoleExporter{}
}

// Export выводит человекочитаемый отчет анализа в консоль.
func (e *ConsoleExporter) Export(result *domain.ChatAnalysisResult) error {
	if result == nil {
		return fmt.Errorf("результат анализа не задан")
	}

	fmt.Printf("--- Chat Analysis: %s ---\n", result.FileName)
	fmt.Printf("Format: %s (nodes: %d)\n", result.Format, result.NodeCount)
	fmt.Printf("Messages: %d, active days: %d (%d%% of span)\n",
		result.TotalMessages, result.ActiveDays, result.ActiveDaysPct)
	fmt.Printf("Span: %s — %s\n",
		result.FirstMessageAt.Format("2006-01-02 15:04"),
		result.LastMessageAt.Format("2006-01-02 15:04"))
	fmt.Printf("Longest day streak: %d, longest gap: %d days\n",
		result.LongestDayStreak, result.LongestGapDays)
	if result.BusiestDay != "" {
		fmt.Printf("Busiest day: %s (%d messages), busiest month: %s\n",
			result.BusiestDay, result.BusiestDayCount, result.BusiestMonth)
	}

	for i, sender := range result.Senders {
		fmt.Printf("%d. %s: %d messages (avg %d chars), streak %d, initiations %d\n",
			i+1, sender.Name, sender.Messages, sender.AvgMessageLength,
			sender.LongestStreak, sender.Initiations)
		if sender.AvgReplyMinutes > 0 {
			fmt.Printf("   reply: avg %.1f min, fastest %.0f s, slowest %.1f min\n",
				sender.AvgReplyMinutes, sender.FastestReplySeconds, sender.SlowestReplyMinutes)
		}
	}

	return nil
}
