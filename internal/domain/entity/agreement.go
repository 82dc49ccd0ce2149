package entity

import "time"

// Agreement statuses. Transitions past pending belong to the admin
// workflow, not this API.
const (
	AgreementPending  = "pending"
	AgreementChecked  = "checked"
	AgreementApproved = "approved"
)

// Agreement is a tenant's rental contract request. At most one agreement
// may exist per user email, enforced by a unique index at the store.
// Rent is snapshotted from the apartment at creation time.
type Agreement struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	ApartmentID string    `json:"apartment_id"`
	FloorNo     int       `json:"floor_no"`
	BlockName   string    `json:"block_name"`
	ApartmentNo string    `json:"apartment_no"`
	Rent        int       `json:"rent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
