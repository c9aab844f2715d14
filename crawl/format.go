package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes an xxhash64 digest of body, hex encoded.
func ComputeHash(body []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(body))
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
