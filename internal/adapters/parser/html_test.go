package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-export-analyzer/internal/domain"
)

func TestHTMLParser(t *testing.T) {
	p := NewHTMLParser()

	t.Run("Строит дерево и считает узлы", func(t *testing.T) {
		doc, err := p.Parse([]byte(`<html><body><div><p>hi</p></div></body></html>`))
		require.NoError(t, err)
		require.NotNil(t, doc)

		assert.NotNil(t, doc.Tree)
		// html, head, body, div, p
		assert.Equal(t, 5, doc.NodeCount)
	})

	t.Run("Пустой ввод дает терминальную ошибку", func(t *testing.T) {
		for _, input := range [][]byte{nil, {}, []byte("   \n\t ")} {
			doc, err := p.Parse(input)
			assert.ErrorIs(t, err, domain.ErrEmptyInput)
			assert.Nil(t, doc)
		}
	})

	t.Run("Терпит сломанную разметку", func(t *testing.T) {
		// html.Parse чинит практически любой ввод, поэтому документ
		// строится даже из незакрытых тегов.
		doc, err := p.Parse([]byte(`<div><p>unclosed`))
		require.NoError(t, err)
		assert.NotNil(t, doc.Tree)
		assert.Greater(t, doc.NodeCount, 0)
	})
}
