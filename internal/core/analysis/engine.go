package analysis

import (
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/ports"
)

// initiationGapMinutes — порог тишины, после которого ответ считается
// началом нового обмена.
const initiationGapMinutes = 360.0

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// senderAccumulator — изменяемое состояние одного отправителя на время
// аналитического прохода. Живет только внутри Analyze и наружу не выходит.
type senderAccumulator struct {
	name        string
	messages    int
	attachments int
	reels       int
	charSum     int
	streak      int
	maxStreak   int
	replyGaps   []float64 // минуты
	words       map[string]int
	emoji       map[string]int
	timeOfDay   domain.TimeOfDay
	initiations int
}

// Service реализует интерфейс Analyzer: один прямой проход по
// отсортированным сообщениям плюс несколько вычислений по всей
// последовательности активных дней.
type Service struct{}

// NewService создает новый аналитический сервис.
func NewService() ports.Analyzer {
	return &Service{}
}

// Analyze строит полный статистический профиль по списку сообщений.
// Список должен быть непустым — каскад гарантирует это раньше.
func (s *Service) Analyze(fileName, format string, nodeCount int, messages []domain.RawMessage) (*domain.ChatAnalysisResult, error) {
	if len(messages) == 0 {
		return nil, domain.ErrFormatNotRecognized
	}

	// Стабильная сортировка: при равных таймстемпах сохраняется исходный
	// относительный порядок, прочий порядок источника не несет смысла.
	sorted := make([]domain.RawMessage, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	accumulators := make(map[string]*senderAccumulator)
	var order []*senderAccumulator
	ensure := func(name string) *senderAccumulator {
		if acc, ok := accumulators[name]; ok {
			return acc
		}
		acc := &senderAccumulator{
			name:  name,
			words: make(map[string]int),
			emoji: make(map[string]int),
		}
		accumulators[name] = acc
		order = append(order, acc)
		return acc
	}

	hourly := make(map[int]int)
	timeline := make(map[string]int)
	months := make(map[string]int)

	var prev *domain.RawMessage
	for i := range sorted {
		msg := &sorted[i]
		acc := ensure(msg.Sender)

		acc.messages++
		switch msg.Kind {
		case domain.KindAttachment:
			acc.attachments++
		case domain.KindReel:
			acc.reels++
		}
		acc.charSum += utf8.RuneCountInString(msg.Content)

		AccumulateWords(msg.Content, acc.words)
		for _, glyph := range ExtractEmoji(msg.Content) {
			acc.emoji[glyph]++
		}

		hour := msg.Timestamp.Hour()
		hourly[hour]++
		switch {
		case hour < 4:
			acc.timeOfDay.LateNight++
		case hour < 12:
			acc.timeOfDay.Morning++
		case hour < 20:
			acc.timeOfDay.Afternoon++
		default:
			acc.timeOfDay.Evening++
		}

		timeline[msg.Timestamp.Format(dayKeyLayout)]++
		months[msg.Timestamp.Format(monthKeyLayout)]++

		switch {
		case prev == nil:
			// Самое первое сообщение открывает переписку.
			acc.initiations++
			acc.streak = 1
			acc.maxStreak = 1
		case prev.Sender != msg.Sender:
			// Ответ: интервал записывается на счет отвечающего.
			gap := msg.Timestamp.Sub(prev.Timestamp).Minutes()
			acc.replyGaps = append(acc.replyGaps, gap)
			if gap > initiationGapMinutes {
				acc.initiations++
			}
			accumulators[prev.Sender].streak = 0
			acc.streak = 1
			if acc.maxStreak < 1 {
				acc.maxStreak = 1
			}
		default:
			acc.streak++
			if acc.streak > acc.maxStreak {
				acc.maxStreak = acc.streak
			}
		}

		prev = msg
	}

	first := sorted[0].Timestamp
	last := sorted[len(sorted)-1].Timestamp

	days := sortedKeys(timeline)
	longestDayStreak, longestGapDays := dayStreaks(days)
	busiestDay, busiestDayCount := busiestKey(days, timeline)
	busiestMonth, _ := busiestKey(sortedKeys(months), months)

	return &domain.ChatAnalysisResult{
		FileName:         fileName,
		TotalMessages:    len(sorted),
		Senders:          assembleSenders(order),
		HourlyStats:      hourly,
		TimelineStats:    timeline,
		FirstMessageAt:   first,
		LastMessageAt:    last,
		ActiveDays:       len(days),
		LongestDayStreak: longestDayStreak,
		LongestGapDays:   longestGapDays,
		ActiveDaysPct:    activeDaysPct(first, last, len(days)),
		BusiestDay:       busiestDay,
		BusiestDayCount:  busiestDayCount,
		BusiestMonth:     busiestMonth,
		Format:           format,
		NodeCount:        nodeCount,
	}, nil
}

// dayStreaks вычисляет самую длинную серию подряд идущих активных дней и
// самый длинный разрыв в днях между соседними активными днями. Ключи дней
// должны быть отсортированы по возрастанию.
func dayStreaks(days []string) (longestStreak, longestGap int) {
	if len(days) == 0 {
		return 0, 0
	}

	longestStreak = 1
	run := 1
	prevDay, _ := time.Parse(dayKeyLayout, days[0])
	for _, key := range days[1:] {
		day, err := time.Parse(dayKeyLayout, key)
		if err != nil {
			continue
		}
		gap := int(day.Sub(prevDay).Hours() / 24)
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		if run > longestStreak {
			longestStreak = run
		}
		if gap > longestGap {
			longestGap = gap
		}
		prevDay = day
	}

	return longestStreak, longestGap
}

// busiestKey возвращает ключ с максимальным значением. Перебор идет по
// отсортированным ключам, так что при равенстве детерминированно
// выигрывает первый встреченный.
func busiestKey(keys []string, counts map[string]int) (string, int) {
	var bestKey string
	bestCount := 0
	for _, key := range keys {
		if counts[key] > bestCount {
			bestKey = key
			bestCount = counts[key]
		}
	}
	return bestKey, bestCount
}

// activeDaysPct — округленная доля активных дней в интервале переписки.
// Интервал считается в календарных днях включительно; нулевой интервал
// (единственное сообщение или единственный активный день) дает 0.
func activeDaysPct(first, last time.Time, activeDays int) int {
	firstDay := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, first.Location())
	lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())

	spanDays := int(lastDay.Sub(firstDay).Hours() / 24)
	if spanDays <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(activeDays) / float64(spanDays+1)))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
