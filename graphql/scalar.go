package graphql

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hupe1980/docid"
)

// ErrIntOutOfRange is returned when an int64 ID does not fit the 32-bit
// GraphQL Int scalar.
var ErrIntOutOfRange = errors.New("integer id exceeds graphql Int range")

// ErrUnexpectedToken indicates a GraphQL literal kind that cannot carry
// an identifier. Only String and Int tokens are accepted.
type ErrUnexpectedToken struct {
	Kind ast.ValueKind
}

func (e *ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected %s token for id", valueKindName(e.Kind))
}

// Marshal renders id as a GraphQL literal.
//
// KindObjectID becomes a String token carrying the docid.Marker prefix,
// KindString a String token verbatim, KindInt64 an Int token. Int64
// values outside the 32-bit Int range are rejected with ErrIntOutOfRange
// rather than truncated; the zero ID is rejected with docid.ErrInvalidID.
func Marshal(id docid.ID) (*ast.Value, error) {
	switch id.Kind() {
	case docid.KindObjectID:
		oid, _ := id.AsObjectID()
		return &ast.Value{Kind: ast.StringValue, Raw: docid.Marker + oid.Hex()}, nil
	case docid.KindString:
		s, _ := id.AsString()
		return &ast.Value{Kind: ast.StringValue, Raw: s}, nil
	case docid.KindInt64:
		i, _ := id.AsInt64()
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", ErrIntOutOfRange, i)
		}
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(i, 10)}, nil
	default:
		return nil, docid.ErrInvalidID
	}
}

// MarshalString renders id as GraphQL literal text, quoting string
// tokens the way they would appear in a query document.
func MarshalString(id docid.ID) (string, error) {
	v, err := Marshal(id)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Unmarshal converts a GraphQL literal into an ID.
//
// String and block string tokens pass through the docid.DecodeString
// marker rule; Int tokens become KindInt64. A nil value, a null literal
// and every other token kind yield *ErrUnexpectedToken.
func Unmarshal(v *ast.Value) (docid.ID, error) {
	if v == nil {
		return docid.ID{}, &ErrUnexpectedToken{Kind: ast.NullValue}
	}
	switch v.Kind {
	case ast.StringValue, ast.BlockValue:
		return docid.DecodeString(v.Raw), nil
	case ast.IntValue:
		i, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return docid.ID{}, fmt.Errorf("parse int token %q: %w", v.Raw, err)
		}
		return docid.Int64(i), nil
	default:
		return docid.ID{}, &ErrUnexpectedToken{Kind: v.Kind}
	}
}

func valueKindName(k ast.ValueKind) string {
	switch k {
	case ast.Variable:
		return "variable"
	case ast.IntValue:
		return "int"
	case ast.FloatValue:
		return "float"
	case ast.StringValue:
		return "string"
	case ast.BlockValue:
		return "block string"
	case ast.BooleanValue:
		return "boolean"
	case ast.NullValue:
		return "null"
	case ast.EnumValue:
		return "enum"
	case ast.ListValue:
		return "list"
	case ast.ObjectValue:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
