package domain

// Challenge is an organization-authored campaign with a reward and a date
// range. Dates are stored as submitted, no range validation.
type Challenge struct {
	ID             int32   `json:"id"`
	OrganizationID string  `json:"organization_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Reward         string  `json:"reward"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Participants   []int32 `json:"participants"` // persisted, not yet populated by any operation
	CreatedOn      string  `json:"created_on"`
}
