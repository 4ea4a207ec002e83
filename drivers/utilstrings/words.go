package utilstrings

import (
	"regexp"

	"github.com/goodglamm/g3util/util/sanitize"
)

// DefaultWordsPerMinute is the reading speed MinutesToRead falls back to.
const DefaultWordsPerMinute = 200

// letters, apostrophes, hyphens and soft hyphens
var reWord = regexp.MustCompile(`[\p{L}'\-\x{00AD}]+`)

// WordCount returns the number of words in s, ignoring markup and
// shortcodes.
func (t T) WordCount(s string) int {
	if t.IsEmpty(s) {
		return 0
	}
	s = sanitize.StripShortcodes(s)
	s = sanitize.StripAllTags(s, true)
	return len(reWord.FindAllStringIndex(s, -1))
}

// MinutesToRead returns the whole number of minutes needed to read s at
// wordsPerMinute. A negative speed counts as its absolute value, a zero
// speed as DefaultWordsPerMinute.
func (t T) MinutesToRead(s string, wordsPerMinute int) int {
	if t.IsEmpty(s) {
		return 0
	}
	if wordsPerMinute < 0 {
		wordsPerMinute = -wordsPerMinute
	}
	if wordsPerMinute == 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return t.WordCount(s) / wordsPerMinute
}
