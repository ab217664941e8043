package format

import (
	"fmt"
	"time"
)

// Size renders a byte count with decimal units, matching drive-marketing
// arithmetic (1 KB = 1000 B) rather than binary units.
func Size(sizeBytes int64) string {
	if sizeBytes < 0 {
		return "0 B"
	}
	value := float64(sizeBytes)
	units := []string{"B", "KB", "MB", "GB", "TB"}
	for _, unit := range units {
		if value < 1000 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1000
	}
	return fmt.Sprintf("%.2f PB", value)
}

func Percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func AgeDays(t time.Time) int {
	return int(time.Since(t).Hours() / 24)
}
