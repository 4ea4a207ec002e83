package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripAllTags(t *testing.T) {
	tests := map[string]struct {
		input        string
		removeBreaks bool
		expected     string
	}{
		"plain":            {"hello world", false, "hello world"},
		"inline tags":      {"<p>hello <b>world</b></p>", false, "hello world"},
		"script dropped":   {"a<script>alert(1)</script>b", false, "ab"},
		"entities decoded": {"<p>don&#39;t &amp; won't</p>", false, "don't & won't"},
		"breaks kept":      {"a\n\nb", false, "a\n\nb"},
		"breaks removed":   {"a\n\n\tb  c", true, "a b c"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, StripAllTags(test.input, test.removeBreaks))
		})
	}
}

func TestTextField(t *testing.T) {
	assert.Equal(t, "hello world", TextField("  hello\n\t <b>world</b> "))
	assert.Equal(t, "ab", TextField("a%20b"))
	assert.Equal(t, "", TextField("\xff\xfe"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "Foo_bar9", Key("  Foo_bar-9!  "))
	assert.Equal(t, "", Key(""))
	assert.Equal(t, "", Key("  é-é  "))
}

func TestLinks(t *testing.T) {
	t.Run("anchor attributes are filtered", func(t *testing.T) {
		s := Links(`<a href="https://example.com" title="t" onclick="x()" class="c">go</a>`)
		assert.Equal(t, `<a href="https://example.com" title="t" class="c">go</a>`, s)
	})
	t.Run("other tags are removed", func(t *testing.T) {
		assert.Equal(t, "see here", Links(`<em>see</em> <span>here</span>`))
	})
	t.Run("javascript urls are dropped", func(t *testing.T) {
		assert.Equal(t, "x", Links(`<a href="javascript:alert(1)">x</a>`))
	})
}

func TestStripShortcodes(t *testing.T) {
	tests := map[string]struct {
		input    string
		tags     []string
		expected string
	}{
		"no shortcode":    {"plain text", nil, "plain text"},
		"self closing":    {"a [gallery ids=\"1,2\" /] b", nil, "a  b"},
		"enclosing":       {"a [caption]pic[/caption] b", nil, "a  b"},
		"unclosed":        {"a [embed] b", nil, "a  b"},
		"escaped":         {"a [[embed]] b", nil, "a [embed] b"},
		"only named tags": {"[keep] [drop]x[/drop]", []string{"drop"}, "[keep] "},
		"several":         {"[a]1[/a][b/]2", nil, "2"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, StripShortcodes(test.input, test.tags...))
		})
	}
}
