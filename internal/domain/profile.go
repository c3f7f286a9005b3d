package domain

type ProfileRole string

const (
	ProfileRoleMember ProfileRole = "member"
	ProfileRoleOrg    ProfileRole = "org"
)

// Identity is the auth record for a login. Profiles are provisioned
// separately, so an identity can briefly exist without a profile
// (federated first sign-in).
type Identity struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}

// Profile is the stored record describing a user's role, points and
// organization affiliation. Role is fixed at creation; points only grow
// under normal flow.
type Profile struct {
	ID             int32       `json:"id"` // same id as the owning identity
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Points         int32       `json:"points"`
	Role           ProfileRole `json:"role"`
	OrganizationID *string     `json:"organization_id"` // present iff role=org
	CreatedOn      string      `json:"created_on"`
	UpdatedOn      string      `json:"updated_on"`
}
