package constants

import "fmt"

// Role adalah enum tertutup untuk peran user.
// Jangan bandingkan string bebas di controller — pakai konstanta ini.
type Role string

const (
	RolePrincipal     Role = "principal"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
	RoleSchoolManager Role = "school_manager"
)

func (r Role) String() string { return string(r) }

// Valid memastikan role termasuk himpunan yang dikenal.
func (r Role) Valid() bool {
	switch r {
	case RolePrincipal, RoleTeacher, RoleStudent, RoleSchoolManager:
		return true
	}
	return false
}

// ParseRole menerjemahkan string (mis. dari klaim JWT) ke Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("role tidak dikenal: %q", s)
	}
	return r, nil
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RolePrincipal,
		RoleTeacher,
		RoleStudent,
		RoleSchoolManager,
	}

	// Role yang boleh mendaftar sendiri; school_manager hanya lewat promosi.
	RegisterableRoles = []Role{
		RolePrincipal,
		RoleTeacher,
		RoleStudent,
	}

	TeacherAndAbove = []Role{
		RoleTeacher,
		RolePrincipal,
		RoleSchoolManager,
	}

	SchoolAdminRoles = []Role{
		RolePrincipal,
		RoleSchoolManager,
	}

	PrincipalOnly = []Role{
		RolePrincipal,
	}
)

// Template pesan error role
const (
	ErrOnlyPrincipalCanAccess   = "❌ Hanya principal yang boleh mengakses fitur %s."
	ErrOnlySchoolAdminCanAccess = "❌ Hanya principal atau school manager yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess    = "❌ Hanya teacher, principal, atau school manager yang boleh mengakses fitur %s."
)

func RoleErrorPrincipal(feature string) string {
	return fmt.Sprintf(ErrOnlyPrincipalCanAccess, feature)
}

func RoleErrorSchoolAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySchoolAdminCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}
