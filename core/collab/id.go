package collab

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// localID synthesizes a timestamp-derived identifier for local-mode
// records. Nanosecond resolution is monotonic enough for one client; the
// counter bump guards against a coarse clock handing out duplicates.
func localID() string {
	now := time.Now().UnixNano()
	for {
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
