package utils

import (
	"time"
)

// Now is the timestamp every entity is stamped with.
func Now() time.Time {
	return time.Now().UTC()
}
