package main

// isHelpKey reports whether a key press is "?". Window backends report the
// unshifted key, so "/" counts only while Shift is held.
func isHelpKey(key string, shift bool) bool {
	return key == "?" || (key == "/" && shift)
}
