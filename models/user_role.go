package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN"
	ModeratorRole UserRole = "MODERATOR"
	CompanyRole   UserRole = "COMPANY"
	StudentRole   UserRole = "STUDENT"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "System Admin",
	ModeratorRole: "Moderator",
	CompanyRole:   "Company Representative",
	StudentRole:   "Student / General User",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

func (r UserRole) IsStaff() bool {
	return r == AdminRole || r == ModeratorRole
}

const SystemUser = "system"

// SessionScope separates marketplace accounts from testimony portal users in the session token.
type SessionScope string

const (
	HubScope    SessionScope = "hub"
	PortalScope SessionScope = "portal"
)
