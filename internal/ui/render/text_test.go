package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text untouched", "hello world", "hello world"},
		{"keeps newlines and tabs", "a\tb\nc", "a\tb\nc"},
		{"drops escape", "bad\x1b[31mred", "bad[31mred"},
		{"drops bell", "ding\x07dong", "dingdong"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"invalid utf8", "ok\xffok", "okok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncate_Styled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := Truncate(styled, 6)
	assert.Equal(t, "hello…", ansi.Strip(got))
	assert.LessOrEqual(t, lipgloss.Width(got), 6)
}

func TestTruncate_Wide(t *testing.T) {
	got := Truncate("日本語テキスト", 7)
	assert.LessOrEqual(t, lipgloss.Width(got), 7)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestLine_FlattensWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Line("one\n  two\tthree ", 40))
}

func TestWrap(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	t.Run("all lines", func(t *testing.T) {
		lines := Wrap(text, 10, 0)
		for _, l := range lines {
			assert.LessOrEqual(t, lipgloss.Width(l), 10)
		}
		assert.Equal(t, text, strings.Join(strings.Fields(strings.Join(lines, " ")), " "))
	})

	t.Run("limited lines end with ellipsis", func(t *testing.T) {
		lines := Wrap(text, 10, 2)
		assert.Len(t, lines, 2)
		assert.True(t, strings.HasSuffix(lines[1], "…"))
		assert.LessOrEqual(t, lipgloss.Width(lines[1]), 10)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Wrap("   ", 10, 2))
		assert.Nil(t, Wrap(text, 0, 2))
	})
}

func TestPadAndFit(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 3))
	assert.Equal(t, "ab…", Fit("abcdef", 3))
	assert.Equal(t, 5, lipgloss.Width(Fit("日本", 5)))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left   right", Row("left", "right", 12))
	assert.Equal(t, "left right", Row("left", "right", 3))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab   ", Center("ab", 7))
	assert.Equal(t, "abc", Center("abc", 2))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", ""}, Lines([]string{"a"}, 3))
	assert.Equal(t, []string{"a"}, Lines([]string{"a", "b"}, 1))
	assert.Nil(t, Lines([]string{"a"}, 0))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
}
