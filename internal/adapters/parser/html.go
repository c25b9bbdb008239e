package parser

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/xerrors"

	"chat-export-analyzer/internal/domain"
	"chat-export-analyzer/internal/ports"
)

// HTMLParser реализует интерфейс Parser для разбора HTML-экспортов.
// Само построение дерева делегировано goquery и трактуется как черный
// ящик: дальше по конвейеру идет только навигируемое дерево.
type HTMLParser struct{}

// NewHTMLParser создает новый экземпляр HTMLParser.
func NewHTMLParser() ports.Parser {
	return &HTMLParser{}
}

// Parse строит дерево документа и подсчитывает число узлов для
// диагностики. Пустой ввод и неразборный документ — терминальные ошибки.
func (p *HTMLParser) Parse(data []byte) (*domain.ParsedDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyInput
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, xerrors.Errorf("failed to build document tree (%v): %w", err, domain.ErrMalformedDocument)
	}

	return &domain.ParsedDocument{
		Tree:      doc,
		NodeCount: doc.Find("*").Length(),
	}, nil
}
