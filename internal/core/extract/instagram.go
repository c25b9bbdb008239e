package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chat-export-analyzer/internal/domain"
)

// Структурные маркеры из HTML-экспортов Meta/Instagram. Классы меняются
// между версиями выгрузки, поэтому селекторы перечисляют все известные
// поколения разметки.
const (
	igContainerSelector = "div._a6-g, div.pam, div.uiBoxWhite"
	igNameSelector      = "h1, h2, h3, h4, div._a6-h, div._3-85"
	igTimeSelector      = "div._a6-o, div._3-94"
	igContentSelector   = "div._a6-p, div._3-95"
)

const attachmentPhrase = "sent an attachment"

// instagramStrategy извлекает сообщения из экспорта Meta/Instagram по
// известным классам-якорям разметки.
type instagramStrategy struct{}

func (instagramStrategy) label() string { return "instagram" }

func (instagramStrategy) tryExtract(doc *domain.ParsedDocument) []domain.RawMessage {
	var messages []domain.RawMessage

	doc.Tree.Find(igContainerSelector).Each(func(_ int, container *goquery.Selection) {
		name := strings.TrimSpace(container.Find(igNameSelector).First().Text())
		if !IsPlausibleSenderName(name) {
			return
		}

		ts, ok := parseExportTime(container.Find(igTimeSelector).First().Text())
		if !ok {
			return
		}

		content := extractContent(container)

		messages = append(messages, domain.RawMessage{
			Sender:    name,
			Timestamp: ts,
			Content:   content,
			Kind:      classifyKind(content, container),
		})
	})

	return messages
}

// extractContent берет текст контент-маркера, а при его отсутствии —
// текст последнего дочернего элемента контейнера.
func extractContent(container *goquery.Selection) string {
	content := container.Find(igContentSelector).First()
	if content.Length() > 0 {
		return strings.TrimSpace(content.Text())
	}
	return strings.TrimSpace(container.Children().Last().Text())
}

// classifyKind определяет тип сообщения по фразам-индикаторам вложения
// и ссылкам внутри контейнера.
func classifyKind(content string, container *goquery.Selection) domain.MessageKind {
	if !strings.Contains(strings.ToLower(content), attachmentPhrase) {
		return domain.KindText
	}

	kind := domain.KindAttachment
	container.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if strings.Contains(href, "/reel/") {
			kind = domain.KindReel
			return false
		}
		return true
	})

	return kind
}
