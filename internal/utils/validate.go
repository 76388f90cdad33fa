package utils

// validate.go implements the account input policies shared by signup, admin
// user creation and password change.  All checks run before any storage is
// touched; each returns a caller-correctable, field-level message.

import (
    "regexp"
    "strings"
    "unicode/utf8"
)

// passwordSymbols is the fixed punctuation set of which at least one
// character must appear in a valid password.
const passwordSymbols = `!@#$%^&*()_-+={}[]|\:;"'<>,.?/`

// emailRe accepts the usual local@domain.tld shape.  Storage-level
// uniqueness is a separate concern handled by the users table.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError pairs an offending input field with a human-readable message.
type FieldError struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidateName enforces the 20–60 character display-name policy.
func ValidateName(name string) *FieldError {
    n := utf8.RuneCountInString(strings.TrimSpace(name))
    if n < 20 || n > 60 {
        return &FieldError{Field: "name", Message: "name must be between 20 and 60 characters"}
    }
    return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) *FieldError {
    if !emailRe.MatchString(strings.TrimSpace(email)) {
        return &FieldError{Field: "email", Message: "invalid email address"}
    }
    return nil
}

// ValidateAddress enforces the 400 character ceiling on postal addresses.
func ValidateAddress(address string) *FieldError {
    if utf8.RuneCountInString(address) > 400 {
        return &FieldError{Field: "address", Message: "address must be at most 400 characters"}
    }
    return nil
}

// ValidatePassword enforces the secret complexity policy: 8–16 characters,
// at least one uppercase letter and at least one symbol from
// passwordSymbols.
func ValidatePassword(password string) *FieldError {
    bad := &FieldError{
        Field:   "password",
        Message: "password must be 8-16 characters with at least one uppercase letter and one special character",
    }
    n := utf8.RuneCountInString(password)
    if n < 8 || n > 16 {
        return bad
    }
    hasUpper := false
    for _, r := range password {
        if r >= 'A' && r <= 'Z' {
            hasUpper = true
            break
        }
    }
    if !hasUpper {
        return bad
    }
    if !strings.ContainsAny(password, passwordSymbols) {
        return bad
    }
    return nil
}
