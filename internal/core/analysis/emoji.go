package analysis

import "github.com/forPelevin/gomoji"

// ExtractEmoji возвращает все эмодзи текста в порядке появления,
// включая повторы: повторы нужны для честного подсчета частот.
func ExtractEmoji(text string) []string {
	found := gomoji.CollectAll(text)
	if len(found) == 0 {
		return nil
	}

	glyphs := make([]string, 0, len(found))
	for _, e := range found {
		glyphs = append(glyphs, e.Character)
	}
	return glyphs
}
