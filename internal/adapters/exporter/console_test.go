package exporter

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"chat-export-analyzer/internal/domain"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func sampleResult() *domain.ChatAnalysisResult {
	return &domain.ChatAnalysisResult{
		FileName:      "chat.html",
		TotalMessages: 4,
		Senders: []domain.SenderStat{
			{
				Name:             "Ann",
				Messages:         3,
				AvgMessageLength: 11,
				AvgReplyMinutes:  5.5,
				LongestStreak:    3,
				Initiations:      1,
				Color:            "#FF6384",
			},
			{
				Name:          "Ben",
				Messages:      1,
				LongestStreak: 1,
				Color:         "#36A2EB",
			},
		},
		HourlyStats:      map[int]int{9: 4},
		TimelineStats:    map[string]int{"2024-01-01": 4},
		FirstMessageAt:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		LastMessageAt:    time.Date(2024, 1, 1, 9, 20, 0, 0, time.UTC),
		ActiveDays:       1,
		LongestDayStreak: 1,
		BusiestDay:       "2024-01-01",
		BusiestDayCount:  4,
		BusiestMonth:     "2024-01",
		Format:           "instagram",
		NodeCount:        7,
	}
}

func TestConsoleExporter(t *testing.T) {
	t.Run("NewConsoleExporter создает корректный экземпляр", func(t *testing.T) {
		exporter := NewConsoleExporter()
		if exporter == nil {
			t.Error("Ожидался экземпляр ConsoleExporter, получен nil")
		}
	})

	t.Run("Export выводит сводку и отправителей", func(t *testing.T) {
		exporter := &ConsoleExporter{}

		output, err := captureStdout(t, func() error {
			return exporter.Export(sampleResult())
		})
		if err != nil {
			t.Errorf("Неожиданная ошибка: %v", err)
		}

		expected := []string{
			"--- Chat Analysis: chat.html ---",
			"Format: instagram (nodes: 7)",
			"Messages: 4, active days: 1",
			"Busiest day: 2024-01-01 (4 messages)",
			"1. Ann: 3 messages (avg 11 chars), streak 3, initiations 1",
			"2. Ben: 1 messages",
		}
		for _, want := range expected {
			if !strings.Contains(output, want) {
				t.Errorf("Ожидалось '%s' в выводе", want)
			}
		}
	})

	t.Run("Export не печатает блок ответов без замеров", func(t *testing.T) {
		exporter := &ConsoleExporter{}

		output, err := captureStdout(t, func() error {
			result := sampleResult()
			result.Senders = result.Senders[1:] // Ben без интервалов ответа
			return exporter.Export(result)
		})
		if err != nil {
			t.Errorf("Неожиданная ошибка: %v", err)
		}

		if strings.Contains(output, "reply:") {
			t.Error("Блок ответов не должен выводиться при нулевых интервалах")
		}
	})

	t.Run("Export возвращает ошибку для nil результата", func(t *testing.T) {
		exporter := &ConsoleExporter{}

		if err := exporter.Export(nil); err == nil {
			t.Error("Ожидалась ошибка для nil результата, получено nil")
		}
	})
}
