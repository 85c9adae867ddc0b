package databases

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/conectacare/conectacare-api/apperrors"
)

// storeError classifies a driver error. Lookups that match nothing become
// NotFound and unique index violations become Conflict. Connectivity
// failures are StoreUnavailable, while a server that answered with an error
// is Internal.
func storeError(message string, err error) error {
	return classify(apperrors.Internal, message, err)
}

// writeError is storeError for array updates. A write the server refused or
// did not acknowledge is reported as the failed kind.
func writeError(failed apperrors.Kind, message string, err error) error {
	return classify(failed, message, err)
}

func classify(rejected apperrors.Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.Wrap(apperrors.NotFound, message, err)
	case mongo.IsDuplicateKeyError(err):
		return apperrors.Wrap(apperrors.Conflict, message, err)
	case unreachable(err):
		return apperrors.Wrap(apperrors.StoreUnavailable, message, err)
	case serverRejected(err):
		return apperrors.Wrap(rejected, message, err)
	default:
		return apperrors.Wrap(apperrors.StoreUnavailable, message, err)
	}
}

func unreachable(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}

func serverRejected(err error) bool {
	var (
		we  mongo.WriteException
		bwe mongo.BulkWriteException
		ce  mongo.CommandError
	)
	return errors.Is(err, mongo.ErrUnacknowledgedWrite) ||
		errors.As(err, &we) ||
		errors.As(err, &bwe) ||
		errors.As(err, &ce)
}
