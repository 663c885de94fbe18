package database

import "time"

// Now is the clock used for publish stamping and gorm timestamps.
var Now = func() time.Time {
	return time.Now().UTC()
}
