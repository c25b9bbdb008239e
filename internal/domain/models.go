package domain

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MessageKind описывает тип сообщения, определенный при извлечении.
type MessageKind string

const (
	KindText       MessageKind = "text"
	KindAttachment MessageKind = "attachment"
	KindReel       MessageKind = "reel"
)

// ParsedDocument представляет разобранное дерево документа экспорта.
// Tree — навигируемое дерево, NodeCount — число узлов для диагностики.
type ParsedDocument struct {
	Tree      *goquery.Document
	NodeCount int
}

// RawMessage представляет одно нормализованное сообщение, извлеченное стратегией.
// Timestamp всегда валиден: кандидаты с нераспознанной датой отбрасываются
// на этапе извлечения.
type RawMessage struct {
	Sender    string
	Timestamp time.Time
	Content   string
	Kind      MessageKind
}

// TimeOfDay содержит счетчики сообщений по четырем интервалам суток.
// Интервалы полуоткрытые: [0,4), [4,12), [12,20), [20,24).
type TimeOfDay struct {
	LateNight int `json:"late_night"`
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
}

// SenderStat представляет неизменяемый снимок статистики одного отправителя.
type SenderStat struct {
	Name                string         `json:"name"`
	Messages            int            `json:"messages"`
	Attachments         int            `json:"attachments"`
	Reels               int            `json:"reels"`
	AvgMessageLength    int            `json:"avg_message_length"`
	AvgReplyMinutes     float64        `json:"avg_reply_minutes"`
	FastestReplySeconds float64        `json:"fastest_reply_seconds"`
	SlowestReplyMinutes float64        `json:"slowest_reply_minutes"`
	LongestStreak       int            `json:"longest_streak"`
	Words               map[string]int `json:"words"`
	Emoji               map[string]int `json:"emoji"`
	TimeOfDay           TimeOfDay      `json:"time_of_day"`
	Initiations         int            `json:"initiations"`
	Color               string         `json:"color"`
}

// ChatAnalysisResult представляет итоговый отчет анализа одного документа.
// Создается один раз на вызов и после этого не изменяется.
type ChatAnalysisResult struct {
	FileName      string `json:"file_name"`
	TotalMessages int    `json:"total_messages"`

	// Отправители, отсортированные по убыванию числа сообщений.
	Senders []SenderStat `json:"senders"`

	// HourlyStats — гистограмма по часам суток (ключ 0-23).
	HourlyStats map[int]int `json:"hourly_stats"`
	// TimelineStats — число сообщений по дням (ключ "2006-01-02").
	TimelineStats map[string]int `json:"timeline_stats"`

	FirstMessageAt   time.Time `json:"first_message_at"`
	LastMessageAt    time.Time `json:"last_message_at"`
	ActiveDays       int       `json:"active_days"`
	LongestDayStreak int       `json:"longest_day_streak"`
	LongestGapDays   int       `json:"longest_gap_days"`
	ActiveDaysPct    int       `json:"active_days_pct"`
	BusiestDay       string    `json:"busiest_day"`
	BusiestDayCount  int       `json:"busiest_day_count"`
	BusiestMonth     string    `json:"busiest_month"`

	// Метаданные определения формата.
	Format    string `json:"format"`
	NodeCount int    `json:"node_count"`
}

// FileOutcome представляет результат обработки одного файла в пакете.
// При ошибке Result равен nil, а Error содержит текст ошибки: вызывающая
// сторона сама решает, как агрегировать частичные неудачи.
type FileOutcome struct {
	FileName string              `json:"file_name"`
	Result   *ChatAnalysisResult `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}
