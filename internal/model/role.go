package model

import "strings"

// Role enumerates the access levels a user account can hold.  The value is
// stored verbatim in the users.role column and embedded in the JWT "role"
// claim.  Keeping it a closed type means the role gate and the admin user
// creation path only ever deal with parsed, known values.
type Role string

const (
    RoleNormalUser  Role = "NORMAL_USER"  // can browse stores and submit ratings
    RoleStoreOwner  Role = "STORE_OWNER"  // can additionally view their own dashboard
    RoleSystemAdmin Role = "SYSTEM_ADMIN" // manages the user and store catalog
)

// ParseRole normalizes raw input and maps it onto a known Role.  The second
// return value reports whether the input named a valid role.
func ParseRole(raw string) (Role, bool) {
    switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
    case RoleNormalUser:
        return RoleNormalUser, true
    case RoleStoreOwner:
        return RoleStoreOwner, true
    case RoleSystemAdmin:
        return RoleSystemAdmin, true
    }
    return "", false
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
    _, ok := ParseRole(string(r))
    return ok
}

// String returns the stored form of the role.
func (r Role) String() string { return string(r) }
