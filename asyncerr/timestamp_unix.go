//go:build scg_noerrtimestamps

package asyncerr

import (
	"strconv"
	"time"
)

// Coarse unix-seconds fallback for builds that strip wall-clock
// formatting support.
func hookTimestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
