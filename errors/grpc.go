package errors

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code maps a domain error to the gRPC code used on every outer surface.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case Is(err, context.Canceled):
		return codes.Canceled
	case Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case Is(err, ErrInvalidRoomReference), Is(err, ErrEmptyConnectionID),
		Is(err, ErrEmptyUserName), Is(err, ErrInvalidState), Is(err, ErrInvalidPassword),
		Is(err, ErrEmptyMessage), Is(err, ErrInvalidRequest):
		return codes.InvalidArgument
	case Is(err, ErrPortalNotFound), Is(err, ErrPageNotFound), Is(err, ErrRoomNotFound),
		Is(err, ErrRecipientNotFound), Is(err, ErrSenderNotFound), Is(err, ErrUserNotFound),
		Is(err, ErrUnknownConnection):
		return codes.NotFound
	case Is(err, ErrDuplicateUser), Is(err, ErrDuplicateRoom), Is(err, ErrOwnerAlreadyExists):
		return codes.AlreadyExists
	case Is(err, ErrInvalidCredentials):
		return codes.Unauthenticated
	case Is(err, ErrForbidden):
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}

// MapToGRPCError wraps err into a status error. Internal errors hide their
// message from the client.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}
