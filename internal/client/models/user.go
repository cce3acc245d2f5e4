package models

import (
	"encoding/json"
	"strings"
)

// Role classifies a user's operational capability. Roles are compared in
// canonical form only; see NormalizeRole.
type Role string

const (
	RoleChecker Role = "checker"
	RolePetugas Role = "petugas"
	RoleHM      Role = "hm"
)

// NormalizeRole returns the canonical (trimmed, lower-case) form of r.
func NormalizeRole(r Role) Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// User is the signed-in account as returned by the API. Fields the console
// does not interpret are kept in Extra and written back unchanged.
type User struct {
	ID    ID
	Name  string
	Role  Role
	Extra map[string]json.RawMessage
}

var userKnownFields = []string{"id", "name", "role"}

// Normalized returns a copy of u with the role in canonical form.
func (u User) Normalized() User {
	u.Role = NormalizeRole(u.Role)
	return u
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+len(userKnownFields))
	for k, v := range u.Extra {
		out[k] = v
	}
	out["id"] = u.ID
	out["name"] = u.Name
	out["role"] = u.Role
	return json.Marshal(out)
}

func (u *User) UnmarshalJSON(b []byte) error {
	var known struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
		Role Role   `json:"role"`
	}
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range userKnownFields {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}

	*u = User{ID: known.ID, Name: known.Name, Role: known.Role, Extra: all}
	return nil
}
