package utilstrings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizedWithLinks(t *testing.T) {
	s := New()

	t.Run("positional parts in href and text", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`Read <a href="%1$s" onclick="x()">%2$s</a> now`, "https://example.com/a", "the post")
		require.NoError(t, err)
		assert.Equal(t, `Read <a href="https://example.com/a">the post</a> now`, got)
	})

	t.Run("sequential parts", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`<a href="%s" title="%s">go</a> %d%%`, "/x", "t", 42)
		require.NoError(t, err)
		assert.Equal(t, `<a href="/x" title="t">go</a> 42%`, got)
	})

	t.Run("other tags are stripped", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`<b>bold</b> <a href="%s" class="c" target="_blank">x</a>`, "/y")
		require.NoError(t, err)
		assert.Equal(t, `bold <a href="/y" class="c" target="_blank">x</a>`, got)
	})

	t.Run("entities are decoded first", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`&lt;a href=&quot;%s&quot;&gt;x&lt;/a&gt;`, "/z")
		require.NoError(t, err)
		assert.Equal(t, `<a href="/z">x</a>`, got)
	})

	t.Run("parts are escaped", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`<a href="%s">%s</a>`, "/q?a=1&b=2", "<i>x</i>")
		require.NoError(t, err)
		assert.Equal(t, `<a href="/q?a=1&amp;b=2">&lt;i&gt;x&lt;/i&gt;</a>`, got)
	})

	t.Run("href part outside the allowed schemes", func(t *testing.T) {
		got, err := s.SanitizedWithLinks(`<a href="%s">x</a>`, "javascript:alert(1)")
		require.NoError(t, err)
		assert.NotContains(t, got, "javascript")
		assert.NotContains(t, got, "href")
		assert.Contains(t, got, "x")
	})

	t.Run("literal token text is kept", func(t *testing.T) {
		got, err := s.SanitizedWithLinks("see G3PH0X and %s", "p")
		require.NoError(t, err)
		assert.Equal(t, "see G3PH0X and p", got)
	})

	t.Run("whitespace pattern", func(t *testing.T) {
		got, err := s.SanitizedWithLinks("  %s ", "p")
		require.NoError(t, err)
		assert.Equal(t, "  p ", got)
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, err := s.SanitizedWithLinks("", "x")
		assert.ErrorIs(t, err, ErrEmptyPattern)
	})

	t.Run("empty parts", func(t *testing.T) {
		_, err := s.SanitizedWithLinks("<a href=\"%s\">x</a>")
		assert.ErrorIs(t, err, ErrEmptyLinkParts)
	})

	t.Run("missing part", func(t *testing.T) {
		_, err := s.SanitizedWithLinks(`%1$s %3$s`, "a", "b")
		assert.ErrorIs(t, err, ErrLinkPartsArity)
	})
}
