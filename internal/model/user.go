package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name (policy: 20–60 characters).
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password, never exposed outward.
//  Address      – postal address (policy: at most 400 characters).
//  Role         – one of NORMAL_USER, STORE_OWNER, SYSTEM_ADMIN.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Address      string    // users.address
    Role         Role      // users.role
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
