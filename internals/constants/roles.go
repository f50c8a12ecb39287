package constants

// Role user sesuai enum signup.
const (
	RoleAdmin    = "admin"
	RoleAgent    = "agent"
	RoleOperator = "operator"
	RoleUser     = "user"
)

var AllowedRoles = []string{RoleAdmin, RoleAgent, RoleOperator, RoleUser}

func IsAllowedRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
