package store

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yash314314/finance-tracking/internal/errs"
)

// classify maps Firestore/gRPC failures onto the error taxonomy. Errors that
// already carry a taxonomy type pass through untouched.
func classify(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	var nf *errs.NotFoundError
	var dup *errs.DuplicateBudgetError
	if errors.As(err, &nf) || errors.As(err, &dup) {
		return err
	}

	switch status.Code(err) {
	case codes.NotFound:
		return errs.NewNotFoundError(notFoundMsg)
	case codes.Unavailable, codes.DeadlineExceeded:
		return errs.NewStoreUnavailableError(err.Error())
	}
	return err
}
