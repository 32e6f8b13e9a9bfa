package utils

import "time"

// RunStamp is the timestamp layout used in report file names.
const RunStamp = "02_Jan_2006_15_04_05"

// Stamp formats t with the RunStamp layout.
func Stamp(t time.Time) string {
	return t.Format(RunStamp)
}
