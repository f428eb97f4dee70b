// Package docid wraps the store-native document identifier so that the
// rest of the application can pass references around as opaque values.
// Cross-collection references are persisted in the canonical hex string
// form, keeping the data model store-agnostic.
package docid

import (
	"fmt"

	"loan-tracker/internal/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ID struct {
	oid primitive.ObjectID
}

// Parse converts the canonical string form back into an ID. Malformed
// input yields apperrors.ErrMalformedID so callers can collapse it with
// not-found where the API contract requires.
func Parse(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", apperrors.ErrMalformedID, s)
	}
	return ID{oid: oid}, nil
}

func FromObjectID(oid primitive.ObjectID) ID {
	return ID{oid: oid}
}

func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

func (id ID) Hex() string {
	return id.oid.Hex()
}

func (id ID) String() string {
	return id.Hex()
}

func (id ID) IsZero() bool {
	return id.oid.IsZero()
}
