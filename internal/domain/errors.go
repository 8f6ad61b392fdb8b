package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrSelfDelete          = errors.New("cannot delete own account")
	ErrAssigneeStatusOnly  = errors.New("assignees can only update task status")
	ErrNoUpdateFields      = errors.New("no valid fields to update")
	ErrInvalidAssignee     = errors.New("assigned user does not exist")
)

// PermissionError is a role/ownership denial; handlers map it to 403 with the
// message as-is.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func Forbidden(msg string) error { return &PermissionError{Message: msg} }
