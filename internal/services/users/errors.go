package users

import "errors"

// ErrUserNotFound - user not found in DB
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the unique email index rejects an insert.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrCreateUser is returned when user registration fails.
var ErrCreateUser = errors.New("failed to register user")

// ErrListUsers is returned when listing users fails.
var ErrListUsers = errors.New("failed to list users")

// ErrUpdateUser is returned when a user update fails.
var ErrUpdateUser = errors.New("failed to update user")

// ErrDeleteUsers is returned when deleting users fails.
var ErrDeleteUsers = errors.New("failed to delete users")

// ErrCreateUsersRepo is returned when users repository creation fails.
var ErrCreateUsersRepo = errors.New("failed to create users repository")
