package domain

// Organization aggregates the points of its members' cleanups.
// TotalPoints is best-effort: it is bumped alongside each submission,
// not recomputed from the cleanup log.
type Organization struct {
	ID           string  `json:"id"` // derived key: org_<uid> of the founding profile
	Name         string  `json:"name"`
	ContactEmail string  `json:"contact_email"`
	TotalPoints  int32   `json:"total_points"`
	MemberIDs    []int32 `json:"member_ids,omitempty"` // populated when needed
	CreatedOn    string  `json:"created_on"`
}
