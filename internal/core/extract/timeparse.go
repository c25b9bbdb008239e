package extract

import (
	"regexp"
	"strings"
	"time"
)

// exportTimeLayouts — форматы дат, встречающиеся в известных экспортах.
// Meta пишет "Jan 15, 2024 9:41 pm" (регистр меридиема гуляет между
// версиями), Telegram — "22.01.2024 21:38:27".
var exportTimeLayouts = []string{
	"Jan 2, 2006 3:04 pm",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006, 3:04 pm",
	"Jan 2, 2006, 3:04 PM",
	"Jan 2, 2006 3:04:05 pm",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006 15:04",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// utcOffsetRegexp вырезает суффикс часового пояса из атрибута title
// телеграмного экспорта ("22.01.2024 21:38:27 UTC+03:00").
var utcOffsetRegexp = regexp.MustCompile(`\s*UTC[+-]\d{2}:\d{2}$`)

// parseExportTime пытается разобрать текст таймстемпа экспорта.
// Возвращает нулевое время и false, если ни один формат не подошел.
func parseExportTime(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	// Неразрывные пробелы из HTML ломают разбор обычных форматов.
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = utcOffsetRegexp.ReplaceAllString(s, "")

	for _, layout := range exportTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}
