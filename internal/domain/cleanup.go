package domain

import "time"

// Cleanup is an immutable log entry for one reported cleanup activity.
type Cleanup struct {
	ID             int32     `json:"id"`
	UserID         int32     `json:"user_id"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	PhotoKey       string    `json:"-"` // storage key, empty when no photo
	PhotoURL       string    `json:"photo_url,omitempty"`
	PointsEarned   int32     `json:"points_earned"`
	CreatedOn      time.Time `json:"created_on"`
}
