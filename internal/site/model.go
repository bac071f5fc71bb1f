package site

import "time"

// Setting is the single site-wide availability record. When IsActive is
// false the whole API answers 503 except for the routes needed to turn it
// back on.
type Setting struct {
	IsActive  bool
	UpdatedAt time.Time
}
