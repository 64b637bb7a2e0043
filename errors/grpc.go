package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain sentinel errors into gRPC status codes.
// Anything unrecognized is reported as Internal without leaking details.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotAvailable):
		return status.Error(codes.FailedPrecondition, ErrNotAvailable.Error())
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrChatNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotificationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrNotSeller):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrInvalidPickupStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
