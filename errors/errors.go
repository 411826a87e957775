package errors

import (
	stderrors "errors"
	"fmt"
)

// Domain errors are recoverable: they are reported to the calling connection
// and never stop the process.
var (
	ErrInvalidRoomReference = fmt.Errorf("invalid room reference")
	ErrPortalNotFound       = fmt.Errorf("portal not found")
	ErrPageNotFound         = fmt.Errorf("page not found")
	ErrDuplicateUser        = fmt.Errorf("user already in room")
	ErrRecipientNotFound    = fmt.Errorf("recipient not found")
	ErrSenderNotFound       = fmt.Errorf("sender not found")
	ErrRoomNotFound         = fmt.Errorf("room not found")
	ErrDuplicateRoom        = fmt.Errorf("room already exists")
	ErrEmptyConnectionID    = fmt.Errorf("connection id is empty")
	ErrEmptyUserName        = fmt.Errorf("user name is empty")
	ErrInvalidState         = fmt.Errorf("unknown presence state")
	ErrForbidden            = fmt.Errorf("operation reserved to the room admin")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrUnknownConnection    = fmt.Errorf("unknown connection")
	ErrEmptyMessage         = fmt.Errorf("message is empty")
	ErrInvalidRequest       = fmt.Errorf("invalid request")
)

// Operator accounts
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrOwnerAlreadyExists = fmt.Errorf("owner already exists")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)

var ErrEmptyWords = fmt.Errorf("no words have been found")

var (
	ErrWorkerPanic    = fmt.Errorf("worker panicked")
	ErrDependencyDown = fmt.Errorf("dependency unavailable")
)

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }
