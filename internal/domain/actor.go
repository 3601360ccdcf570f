package domain

// Role is the role an actor holds within the organization. Authorization
// decisions for approval transitions are made against the configured set
// of approver roles, not hard-coded role names.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHR      Role = "hr"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleClient  Role = "client"
)

// Actor identifies who is performing a mutating operation. Authentication
// is out of scope; the identity provider hands the ledger a resolved
// actor ID and role.
type Actor struct {
	ID   string
	Role Role
}
