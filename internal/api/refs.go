package api

import (
	"strconv" // Integer formatting
	"time"    // Wall-clock millis
)

// timeRef builds a human-readable reference like ORD-1712345678901.
// Same-millisecond creations can produce the same reference; the row's
// primary key stays unique regardless.
func timeRef(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
