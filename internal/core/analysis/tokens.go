package analysis

import (
	"regexp"
	"strings"
)

// minTokenLen — минимальная длина учитываемого токена.
const minTokenLen = 2

// nonWordRegexp вычищает все, что не словесный символ и не пробел.
var nonWordRegexp = regexp.MustCompile(`[^\w\s]`)

// stopWords — частотные служебные слова плюс шумовые токены самих
// экспортов ("attachment", "sent", маркеры меридиема). Стемминга нет,
// учитывается только точная частота токенов.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "you": {}, "that": {}, "was": {}, "for": {},
	"are": {}, "with": {}, "this": {}, "have": {}, "but": {}, "not": {},
	"its": {}, "just": {}, "your": {}, "what": {}, "when": {}, "all": {},
	"can": {}, "will": {}, "get": {}, "out": {}, "like": {}, "one": {},
	"her": {}, "him": {}, "they": {}, "them": {}, "were": {}, "been": {},
	"from": {}, "about": {},
	"attachment": {}, "sent": {}, "pm": {}, "am": {},
}

// AccumulateWords токенизирует текст и наращивает частоты в целевой мапе.
// Текст приводится к нижнему регистру, не-словесные символы удаляются,
// токены короче двух символов и стоп-слова пропускаются.
func AccumulateWords(text string, into map[string]int) {
	cleaned := nonWordRegexp.ReplaceAllString(strings.ToLower(text), "")
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minTokenLen {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		into[token]++
	}
}
