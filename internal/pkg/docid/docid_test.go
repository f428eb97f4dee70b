package docid

import (
	"errors"
	"testing"

	"loan-tracker/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse(t *testing.T) {
	t.Run("round-trips a valid hex identifier", func(t *testing.T) {
		oid := primitive.NewObjectID()

		id, err := Parse(oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid, id.ObjectID())
		assert.Equal(t, oid.Hex(), id.Hex())
		assert.Equal(t, oid.Hex(), id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("rejects malformed input with ErrMalformedID", func(t *testing.T) {
		for _, input := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
			_, err := Parse(input)
			assert.Truef(t, errors.Is(err, apperrors.ErrMalformedID), "input %q should be malformed", input)
		}
	})

	t.Run("zero value reports zero", func(t *testing.T) {
		var id ID
		assert.True(t, id.IsZero())
	})
}
