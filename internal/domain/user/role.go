package user

import "fmt"

// Role is the single source of a user's platform privileges.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleOrganizer Role = "organizer"
	RoleVisitor   Role = "visitor"
)

// Capability names an action guarded by role.
type Capability string

const (
	CapabilityModerate         Capability = "moderate"
	CapabilityCreateExhibition Capability = "create_exhibition"
	CapabilityCreateCompany    Capability = "create_company"
	CapabilityWriteReview      Capability = "write_review"
	CapabilityManageSettings   Capability = "manage_settings"
	CapabilityManageUsers      Capability = "manage_users"
	CapabilityViewAnalytics    Capability = "view_analytics"
)

// AllCapabilities lists every capability in a stable order.
var AllCapabilities = []Capability{
	CapabilityModerate,
	CapabilityCreateExhibition,
	CapabilityCreateCompany,
	CapabilityWriteReview,
	CapabilityManageSettings,
	CapabilityManageUsers,
	CapabilityViewAnalytics,
}

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: AllCapabilities,
	RoleOrganizer: {
		CapabilityCreateExhibition,
		CapabilityCreateCompany,
		CapabilityWriteReview,
	},
	RoleVisitor: {
		CapabilityCreateCompany,
		CapabilityWriteReview,
	},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// CapabilityTable returns a copy of the role to capability table. Policy
// enforcers are seeded from it.
func CapabilityTable() map[Role][]Capability {
	out := make(map[Role][]Capability, len(roleCapabilities))
	for role, caps := range roleCapabilities {
		out[role] = append([]Capability(nil), caps...)
	}
	return out
}

// Principal is the acting user as seen by authorization checks.
type Principal struct {
	UserID    uint
	Role      Role
	Superuser bool
}

// EffectiveRole folds the superuser flag into the role.
func (p Principal) EffectiveRole() Role {
	if p.Superuser {
		return RoleAdmin
	}
	return p.Role
}

// HasCapability reports whether p may perform c.
func HasCapability(p Principal, c Capability) bool {
	if p.UserID == 0 {
		return false
	}
	for _, granted := range roleCapabilities[p.EffectiveRole()] {
		if granted == c {
			return true
		}
	}
	return false
}
