package types

// Role orders session privileges. Guests can browse and leave, members own
// their notes, admins run the blog and the dashboard.
type Role int8

const (
	RoleGuest Role = iota
	RoleMember
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RoleMember:
		return "member"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Actor is the resolved request identity. A nil Actor is an anonymous
// visitor; every capability method is nil-safe so handlers never have to
// check first.
type Actor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Role      Role   `json:"role"`
	SessionID string `json:"session_id"`
}

func (a *Actor) Authenticated() bool {
	return a != nil
}

func (a *Actor) IsGuest() bool {
	return a != nil && a.Role == RoleGuest
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// CanWriteNotes reports whether the actor may create or delete notes.
// Guests are read-only.
func (a *Actor) CanWriteNotes() bool {
	return a != nil && a.Role != RoleGuest
}
