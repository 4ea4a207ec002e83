package utilstrings

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var (
	// ErrSearchReplaceType is returned when search or replace is neither a
	// string, a number nor a list of those.
	ErrSearchReplaceType = errors.New("search and replace must be strings or lists of strings")

	// ErrReplaceNotScalar is returned when replace is a list but search is not.
	ErrReplaceNotScalar = errors.New("replace must be a string when search is a string")

	// ErrReplaceArity is returned when replace has less items than search.
	ErrReplaceArity = errors.New("replace must have at least as many items as search")
)

// SearchReplace replaces in subject every occurrence of search with
// replace.
//
// search and replace each accept a string, a number, or a list. A list
// replace requires a list search with no more items. A list search is
// applied item by item, in order, each pass working on the result of the
// previous one, with either the matching replace item or the single
// replace string.
func (t T) SearchReplace(search, replace any, subject string) (string, error) {
	searchList, isSearchList, err := toList(search)
	if err != nil {
		return "", errors.Wrap(err, "search")
	}
	replaceList, isReplaceList, err := toList(replace)
	if err != nil {
		return "", errors.Wrap(err, "replace")
	}
	switch {
	case !isSearchList && isReplaceList:
		return "", ErrReplaceNotScalar
	case isSearchList && isReplaceList && len(searchList) > len(replaceList):
		return "", errors.Wrapf(ErrReplaceArity, "%d search items, %d replace items", len(searchList), len(replaceList))
	}
	for i, s := range searchList {
		r := replaceList[0]
		if isReplaceList {
			r = replaceList[i]
		}
		subject = replaceAll(s, r, subject)
	}
	return subject, nil
}

func toList(v any) ([]string, bool, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, false, nil
	case []string:
		return x, true, nil
	case []any:
		l := make([]string, len(x))
		for i, e := range x {
			s, err := scalar(e)
			if err != nil {
				return nil, true, err
			}
			l[i] = s
		}
		return l, true, nil
	default:
		s, err := scalar(v)
		if err != nil {
			return nil, false, err
		}
		return []string{s}, false, nil
	}
}

func scalar(v any) (string, error) {
	switch v.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return cast.ToStringE(v)
	default:
		return "", errors.Wrapf(ErrSearchReplaceType, "got %T", v)
	}
}

// replaceAll splits subject on search and joins the parts with replace.
// Bytes are compared as is, so a valid UTF-8 search never matches inside
// a multibyte character and invalid bytes of subject are kept.
func replaceAll(search, replace, subject string) string {
	if search == "" {
		return subject
	}
	return strings.Join(strings.Split(subject, search), replace)
}
