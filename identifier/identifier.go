// Package identifier generates and validates the opaque identifiers used for
// top-level documents and for the records embedded in them.
package identifier

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/conectacare/conectacare-api/apperrors"
)

// Parse converts the external string form of an identifier into its store form.
// A malformed candidate yields an apperrors.InvalidIDFormat error; whether the
// identifier exists is for the repository to decide.
func Parse(candidate string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(candidate))
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.InvalidIDFormat, "invalid id format", err)
	}
	return id, nil
}

// ParseNamed is Parse with the name of the offending field in the error message
func ParseNamed(name, candidate string) (primitive.ObjectID, error) {
	id, err := Parse(candidate)
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.InvalidIDFormat, "invalid "+name+" format", err)
	}
	return id, nil
}

// ParseAll parses every candidate, failing on the first malformed one
func ParseAll(name string, candidates []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(candidates))
	for _, c := range candidates {
		id, err := ParseNamed(name, c)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Generate returns a fresh identifier
func Generate() primitive.ObjectID {
	return primitive.NewObjectID()
}

// String renders id in its external form
func String(id primitive.ObjectID) string {
	return id.Hex()
}

// Strings renders every id, never returning nil
func Strings(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
