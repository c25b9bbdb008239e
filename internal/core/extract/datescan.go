package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"chat-export-analyzer/internal/domain"
)

// exportDateRegexp описывает строгий экспортный таймстемп: длинная дата
// с годом и временем с меридиемом ("Jan 15, 2024 9:41 pm").
var exportDateRegexp = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{1,2},\s*\d{4},?\s+\d{1,2}:\d{2}(:\d{2})?\s*[ap]m$`)

// dateScanStrategy — эвристический запасной вариант: находит узлы с
// экспортным таймстемпом и ищет ближайшее правдоподобное имя среди
// предыдущих соседей и соседей родителя. Жертвует точностью ради
// полноты, поэтому стоит в каскаде после классовой стратегии; в
// необычных раскладках возможна двойная или ошибочная атрибуция.
type dateScanStrategy struct{}

func (dateScanStrategy) label() string { return "date-scan" }

func (dateScanStrategy) tryExtract(doc *domain.ParsedDocument) []domain.RawMessage {
	var messages []domain.RawMessage

	doc.Tree.Find("div, span, p, td, li").Each(func(_ int, node *goquery.Selection) {
		dateText := strings.TrimSpace(ownText(node))
		if !exportDateRegexp.MatchString(dateText) {
			return
		}

		ts, ok := parseExportTime(dateText)
		if !ok {
			return
		}

		sender, content := locateSenderAndContent(node)
		if !IsPlausibleSenderName(sender) {
			return
		}

		messages = append(messages, domain.RawMessage{
			Sender:    sender,
			Timestamp: ts,
			Content:   content,
			Kind:      classifyKind(content, node.Parent()),
		})
	})

	return messages
}

// locateSenderAndContent покрывает две типичные формы контейнера:
// соседи "имя, текст, дата" и отдельная строка-заголовок "имя + дата",
// за которой следует сосед родителя с текстом.
func locateSenderAndContent(dateNode *goquery.Selection) (string, string) {
	prev := dateNode.Prev()
	prevPrev := prev.Prev()

	// Форма 1: имя, текст и дата — соседи в одном контейнере.
	if prevPrev.Length() > 0 {
		name := strings.TrimSpace(prevPrev.Text())
		if IsPlausibleSenderName(name) && !exportDateRegexp.MatchString(name) {
			return name, strings.TrimSpace(prev.Text())
		}
	}

	// Форма 2: строка-заголовок держит имя и дату, текст лежит в
	// следующем соседе — самого узла даты или его родителя.
	if prev.Length() > 0 {
		name := strings.TrimSpace(prev.Text())
		if IsPlausibleSenderName(name) && !exportDateRegexp.MatchString(name) {
			content := strings.TrimSpace(dateNode.Next().Text())
			if content == "" {
				content = strings.TrimSpace(dateNode.Parent().Next().Text())
			}
			return name, content
		}
	}

	return "", ""
}

// ownText возвращает текст непосредственно внутри узла, без текста
// дочерних элементов.
func ownText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				sb.WriteString(child.Data)
			}
		}
	}
	return sb.String()
}
