package model

import "time"

// Product describes a catalog entry.
type Product struct {
	ID                   string
	Type                 string
	Name                 string
	Category             string
	Brand                string
	Description          string
	Price                float64
	DiscountedPercentage float64
	Badge                bool
	IsAvailable          bool
	Offer                bool
	Tags                 []string
	Images               []string
	CreatedAt            time.Time
}
