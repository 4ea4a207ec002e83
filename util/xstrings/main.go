package xstrings

import "fmt"

// Plural returns singular when n is 1, else plural.
func Plural(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Count formats n followed by the unit word agreeing with n, as in
// "1 week" or "3 weeks".
func Count(n int64, singular, plural string) string {
	return fmt.Sprintf("%d %s", n, Plural(n, singular, plural))
}
