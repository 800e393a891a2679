package domain

import "time"

// Product is one entry on the bakery menu. Cart prices originate here.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Category    string
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
