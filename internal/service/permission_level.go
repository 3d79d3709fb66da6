package service

import (
	"net/http"
	"strings"
)

// PermissionLevel ranks how privileged an operation is. Zero is reserved for
// "no access" and never grants anything.
type PermissionLevel int

const (
	LevelAccessDenied PermissionLevel = 0
	LevelView         PermissionLevel = 1
	LevelModify       PermissionLevel = 2
	LevelCreate       PermissionLevel = 3
	LevelFullAccess   PermissionLevel = 4
)

// unsatisfiable is required by verbs the gate does not know.
const unsatisfiable PermissionLevel = LevelFullAccess + 1

// RequiredLevel maps an HTTP verb to the level it needs.
func RequiredLevel(verb string) PermissionLevel {
	switch strings.ToUpper(strings.TrimSpace(verb)) {
	case http.MethodGet:
		return LevelView
	case http.MethodPut, http.MethodPatch:
		return LevelModify
	case http.MethodPost:
		return LevelCreate
	case http.MethodDelete:
		return LevelFullAccess
	default:
		return unsatisfiable
	}
}

// Grants reports whether a stored level satisfies required.
func (l PermissionLevel) Grants(required PermissionLevel) bool {
	return l != LevelAccessDenied && l >= required
}
