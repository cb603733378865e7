package collab

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/dkimathi/darasa/core"
)

// Roles are client-declared labels; checks against them are advisory only.
const (
	// Class representative; may post assignments/announcements and
	// delete any assignment or note.
	RoleClassRep = "rep:"

	// Student
	RoleStudent = "student:"
)

var (
	ClassRepRoles = []string{RoleClassRep}
	StudentRoles  = []string{RoleStudent}
	AllRoles      = getAllRoles()

	rolePriorities = map[string]int{
		// Class reps: 20 - 11
		RoleClassRep: 11,

		// Students: 10 - 1
		RoleStudent: 1,
	}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Class Representative", Value: RoleClassRep},
	}

	allRolesTag = "allroles"
)

func init() {
	_ = core.Validate.RegisterValidation(allRolesTag, allRolesValidation)
	core.RegisterCustomTranslation(allRolesTag, "invalid roles")
}

func getAllRoles() []string {
	all := make([]string, 0, 2)
	all = append(all, ClassRepRoles...)
	all = append(all, StudentRoles...)
	return all
}

func RolePriority(role string) int {
	return rolePriorities[role]
}

func MaxRolePriority(roles []string) int {
	var max int
	for _, role := range roles {
		if RolePriority(role) > max {
			max = RolePriority(role)
		}
	}
	return max
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// allRolesValidation checks that provided roles are all in AllRoles.
func allRolesValidation(fl validator.FieldLevel) bool {
	roles, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	sorted := append([]string(nil), AllRoles...)
	sort.Strings(sorted)
	for _, role := range roles {
		idx := sort.SearchStrings(sorted, role)
		if idx >= len(sorted) || sorted[idx] != role {
			return false
		}
	}
	return true
}
