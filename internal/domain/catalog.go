package domain

import "time"

// Catalog is the static collection of all known learning units and resources.
type Catalog struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
