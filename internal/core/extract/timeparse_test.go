package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportTime(t *testing.T) {
	t.Run("Разбирает форматы Meta", func(t *testing.T) {
		cases := map[string]time.Time{
			"Jan 1, 2024 9:00 am":  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			"Jan 1, 2024 9:00 AM":  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			"Feb 29, 2024, 11:59 pm": time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		}
		for input, want := range cases {
			got, ok := parseExportTime(input)
			require.True(t, ok, "строка %q должна разбираться", input)
			assert.True(t, want.Equal(got), "строка %q: ожидалось %v, получено %v", input, want, got)
		}
	})

	t.Run("Разбирает формат Telegram с суффиксом пояса", func(t *testing.T) {
		got, ok := parseExportTime("22.01.2024 21:38:27 UTC+03:00")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 22, 21, 38, 27, 0, time.UTC), got)
	})

	t.Run("Разбирает строку с неразрывными пробелами", func(t *testing.T) {
		_, ok := parseExportTime("Jan 1, 2024 9:00 am")
		assert.True(t, ok)
	})

	t.Run("Отвергает мусор", func(t *testing.T) {
		for _, input := range []string{"", "hello", "Ann", "25:99"} {
			_, ok := parseExportTime(input)
			assert.False(t, ok, "строка %q не должна разбираться", input)
		}
	})
}
