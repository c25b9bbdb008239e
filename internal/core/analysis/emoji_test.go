package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmoji(t *testing.T) {
	t.Run("Возвращает эмодзи с повторами", func(t *testing.T) {
		glyphs := ExtractEmoji("привет 😂 как дела 😂❤️")

		assert.Len(t, glyphs, 3)
		counts := make(map[string]int)
		for _, g := range glyphs {
			counts[g]++
		}
		assert.Equal(t, 2, counts["😂"])
		assert.Equal(t, 1, counts["❤️"])
	})

	t.Run("Текст без эмодзи дает пустой результат", func(t *testing.T) {
		assert.Empty(t, ExtractEmoji("plain text only"))
		assert.Empty(t, ExtractEmoji(""))
	})
}
