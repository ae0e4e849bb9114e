package auth

import "errors"

// ErrInvalidCredentials covers unknown accounts, wrong passwords and
// deactivated accounts alike, the login response never distinguishes
var ErrInvalidCredentials = errors.New("invalid credentials")
