package analysis

import (
	"math"
	"sort"

	"chat-export-analyzer/internal/domain"
)

// palette — фиксированная циклическая палитра отображаемых цветов,
// назначаемых по рангу отправителя.
var palette = [...]string{
	"#FF6384",
	"#36A2EB",
	"#FFCE56",
	"#4BC0C0",
	"#9966FF",
	"#FF9F40",
}

// assembleSenders превращает накопители в неизменяемые снимки: ранжирует
// по убыванию числа сообщений (стабильно, при равенстве сохраняется
// порядок первого появления) и назначает цвет по рангу.
func assembleSenders(order []*senderAccumulator) []domain.SenderStat {
	ranked := make([]*senderAccumulator, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].messages > ranked[j].messages
	})

	stats := make([]domain.SenderStat, 0, len(ranked))
	for rank, acc := range ranked {
		stats = append(stats, domain.SenderStat{
			Name:                acc.name,
			Messages:            acc.messages,
			Attachments:         acc.attachments,
			Reels:               acc.reels,
			AvgMessageLength:    avgLength(acc.charSum, acc.messages),
			AvgReplyMinutes:     meanGap(acc.replyGaps),
			FastestReplySeconds: minGap(acc.replyGaps) * 60,
			SlowestReplyMinutes: maxGap(acc.replyGaps),
			LongestStreak:       acc.maxStreak,
			Words:               acc.words,
			Emoji:               acc.emoji,
			TimeOfDay:           acc.timeOfDay,
			Initiations:         acc.initiations,
			Color:               palette[rank%len(palette)],
		})
	}

	return stats
}

func avgLength(charSum, messages int) int {
	if messages == 0 {
		return 0
	}
	return int(math.Round(float64(charSum) / float64(messages)))
}

func meanGap(gaps []float64) float64 {
	if len(gaps) == 0 {
		return 0
	}
	sum := 0.0
	for _, gap := range gaps {
		sum += gap
	}
	return sum / float64(len(gaps))
}

func minGap(gaps []float64) float64 {
	if len(gaps) == 0 {
		return 0
	}
	best := gaps[0]
	for _, gap := range gaps[1:] {
		if gap < best {
			best = gap
		}
	}
	return best
}

func maxGap(gaps []float64) float64 {
	if len(gaps) == 0 {
		return 0
	}
	best := gaps[0]
	for _, gap := range gaps[1:] {
		if gap > best {
			best = gap
		}
	}
	return best
}
