package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxSenderNameLen — практический предел длины отображаемого имени.
const maxSenderNameLen = 60

var (
	// Время вида "9:41", "21:05", "9:41 PM".
	clockRegexp = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?\s*([AaPp][Mm])?$`)
	// Голый маркер меридиема.
	meridiemRegexp = regexp.MustCompile(`^[AaPp][Mm]$`)
	// Длинная дата вида "Jan 15, 2024" или "January 15, 2024".
	longDateRegexp = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},\s*\d{4}`)
	// Числовая дата вида "15/01/2024".
	slashDateRegexp = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
)

// systemLabels — служебные строки интерфейса, которые экспорт подставляет
// на место имени. Сравнение регистронезависимое.
var systemLabels = map[string]struct{}{
	"seen":                {},
	"reacted":             {},
	"liked a message":     {},
	"missed video call":   {},
	"missed audio call":   {},
	"video call":          {},
	"audio call":          {},
	"active now":          {},
	"unsent a message":    {},
	"sent an attachment.": {},
}

// IsPlausibleSenderName сообщает, похожа ли строка на имя отправителя.
// Фильтр консервативен: отвергнуть настоящее имя, совпавшее с датой,
// допустимо, а вот принять таймстемп за имя нельзя — это испортило бы
// все агрегаты ниже по конвейеру.
func IsPlausibleSenderName(text string) bool {
	name := strings.TrimSpace(text)
	if name == "" || utf8.RuneCountInString(name) > maxSenderNameLen {
		return false
	}

	if clockRegexp.MatchString(name) || meridiemRegexp.MatchString(name) {
		return false
	}
	if longDateRegexp.MatchString(name) || slashDateRegexp.MatchString(name) {
		return false
	}

	lower := strings.ToLower(name)
	if _, ok := systemLabels[lower]; ok {
		return false
	}
	if strings.Contains(lower, "sent an attachment") {
		return false
	}

	return true
}
