package utils_test

import (
	"testing"

	"portfolio-api/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseCellDecimal(t *testing.T) {
	t.Run("parses plain numbers", func(t *testing.T) {
		assert.Equal(t, "42.5", utils.ParseCellDecimal("42.5").String())
	})

	t.Run("tolerates currency formatting", func(t *testing.T) {
		assert.Equal(t, "1234.5", utils.ParseCellDecimal("$1,234.5").String())
	})

	t.Run("empty cell becomes zero", func(t *testing.T) {
		assert.True(t, utils.ParseCellDecimal("").IsZero())
	})

	t.Run("malformed cell becomes zero, not an error", func(t *testing.T) {
		assert.True(t, utils.ParseCellDecimal("n/a").IsZero())
		assert.True(t, utils.ParseCellDecimal("12..3").IsZero())
	})
}

func TestCellAt(t *testing.T) {
	row := []string{"a", " b ", "c"}

	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "b", utils.CellAt(row, 1))
	})

	t.Run("short rows read as empty", func(t *testing.T) {
		assert.Equal(t, "", utils.CellAt(row, 7))
	})
}
