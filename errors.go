package docid

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	// ErrInvalidID is returned when an encode or convert operation is
	// applied to the zero ID, which holds no variant.
	ErrInvalidID = errors.New("invalid id: zero value")

	// ErrIntegerRange is returned when a numeric input does not fit the
	// signed 64-bit integer variant.
	ErrIntegerRange = errors.New("integer id out of int64 range")
)

// ErrUnsupportedType indicates a BSON value whose type has no ID variant.
//
// Only ObjectID, string and int64 values can carry an identifier.
type ErrUnsupportedType struct {
	Type bsontype.Type
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported bson type for id: %s", e.Type)
}

// ErrUnexpectedShape indicates a JSON or Go input whose shape has no ID
// variant, such as a boolean, float, null or array.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnexpectedShape struct {
	Shape string
	cause error
}

func (e *ErrUnexpectedShape) Error() string {
	return fmt.Sprintf("cannot decode %s into an id", e.Shape)
}

func (e *ErrUnexpectedShape) Unwrap() error { return e.cause }
