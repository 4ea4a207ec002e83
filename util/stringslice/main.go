package stringslice

// Has returns true if any element of l is s
func Has[E comparable](s E, l []E) bool {
	for _, e := range l {
		if e == s {
			return true
		}
	}
	return false
}
