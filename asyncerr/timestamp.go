//go:build !scg_noerrtimestamps

package asyncerr

import "time"

const hookTimeLayout = "2006-01-02 15:04:05"

func hookTimestamp(t time.Time) string {
	return t.Format(hookTimeLayout)
}
