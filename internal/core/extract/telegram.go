package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"chat-export-analyzer/internal/domain"
)

// Маркеры HTML-экспорта Telegram. Атрибут title у узла даты несет полную
// точность ("22.01.2024 21:38:27 UTC+03:00"), отображаемый текст — только
// время, поэтому title предпочтительнее.
const (
	tgContainerSelector = "div.message"
	tgNameSelector      = "div.from_name"
	tgDateSelector      = "div.date"
	tgTextSelector      = "div.text"
	tgPhotoSelector     = "a.photo_wrap, div.photo_wrap, img.photo"
	tgVideoSelector     = "a.video_file_wrap, div.video_file_wrap"
)

// telegramStrategy извлекает сообщения из HTML-экспорта Telegram.
type telegramStrategy struct{}

func (telegramStrategy) label() string { return "telegram" }

func (telegramStrategy) tryExtract(doc *domain.ParsedDocument) []domain.RawMessage {
	var messages []domain.RawMessage

	doc.Tree.Find(tgContainerSelector).Each(func(_ int, container *goquery.Selection) {
		name := strings.TrimSpace(container.Find(tgNameSelector).First().Text())
		if !IsPlausibleSenderName(name) {
			return
		}

		dateNode := container.Find(tgDateSelector).First()
		dateText, exists := dateNode.Attr("title")
		if !exists {
			dateText = dateNode.Text()
		}
		ts, ok := parseExportTime(dateText)
		if !ok {
			return
		}

		content := strings.TrimSpace(container.Find(tgTextSelector).First().Text())

		kind := domain.KindText
		if container.Find(tgPhotoSelector).Length() > 0 {
			kind = domain.KindAttachment
		}
		if container.Find(tgVideoSelector).Length() > 0 {
			kind = domain.KindReel
		}

		messages = append(messages, domain.RawMessage{
			Sender:    name,
			Timestamp: ts,
			Content:   content,
			Kind:      kind,
		})
	})

	return messages
}
