package entity

import "time"

// Apartment is an inventory unit. Rent is a positive amount in major
// currency units. Inventory is read-only to request handlers except for
// photo attachments.
type Apartment struct {
	ID          string    `json:"id"`
	FloorNo     int       `json:"floor_no"`
	BlockName   string    `json:"block_name"`
	ApartmentNo string    `json:"apartment_no"`
	Rent        int       `json:"rent"`
	Available   bool      `json:"available"`
	PhotoURLs   []string  `json:"photo_urls"`
	CreatedAt   time.Time `json:"created_at"`
}
