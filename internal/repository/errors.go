// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver error strings themselves. For example,
// ErrEmailExists maps the MySQL duplicate-key failure on users.email
// onto a conflict the signup handler can report, while
// ErrBadOldPassword signals that a password change presented the
// wrong current secret.
package repository

import "errors"

// ErrEmailExists is returned when an insert would violate the unique
// constraint on users.email. Handlers should translate this into an
// HTTP 400/409 conflict response.
var ErrEmailExists = errors.New("email already exists")

// ErrBadOldPassword is returned by ChangePassword when the supplied
// current password does not match the stored hash. Handlers should
// translate this into an HTTP 401 response with a generic message.
var ErrBadOldPassword = errors.New("old password mismatch")
