package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/gymparty/internal/attendance"
	"github.com/mmynk/gymparty/internal/auth"
	"github.com/mmynk/gymparty/internal/blob"
	"github.com/mmynk/gymparty/internal/middleware"
	"github.com/mmynk/gymparty/internal/party"
)

// toConnectError maps domain errors to Connect error codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, party.ErrNotFound), errors.Is(err, party.ErrNotMember):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, party.ErrUnauthorized):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, party.ErrCapacityExceeded):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, party.ErrAlreadyCheckedIn), errors.Is(err, attendance.ErrAlreadyCheckedInToday):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, party.ErrExpiredOrInactive), errors.Is(err, party.ErrCreatorMustCancel):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, blob.ErrInvalidPhoto), errors.Is(err, party.ErrInvalidMessage):
		// A bad image also wraps the upload error; the caller must fix it.
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, party.ErrPhotoUpload), errors.Is(err, attendance.ErrPhotoUpload),
		errors.Is(err, party.ErrCodeSpaceExhausted):
		return connect.NewError(connect.CodeUnavailable, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireUser returns the authenticated caller or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
