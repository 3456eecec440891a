// Package analysis derives the analytical views of an extracted
// specification: summary, compliance flags, submittal log and bid
// notes. The views are thin glue over the chunker, the completion
// client and local text search; none of them run on empty text.
package analysis

// truncate bounds s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
