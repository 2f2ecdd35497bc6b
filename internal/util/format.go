package util

import "fmt"

// FormatSeconds formats a track duration in whole seconds as m:ss.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
