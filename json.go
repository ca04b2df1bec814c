package docid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// extOID is the extended JSON document form of an ObjectID.
type extOID struct {
	OID string `json:"$oid"`
}

// MarshalJSON implements json.Marshaler.
//
// KindObjectID emits the document form {"$oid":"<24-hex>"}, KindString a
// bare string, KindInt64 a bare number. The zero ID cannot be marshaled.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case KindObjectID:
		return json.Marshal(extOID{OID: id.oid.Hex()})
	case KindString:
		return json.Marshal(id.str)
	case KindInt64:
		return strconv.AppendInt(nil, id.i64, 10), nil
	default:
		return nil, ErrInvalidID
	}
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Objects are reinterpreted as extended JSON values and mapped through
// FromRawValue, so {"$oid":"<24-hex>"} restores the ObjectID variant.
// Strings pass through the DecodeString marker rule. Integers become
// KindInt64. Every other shape (floats, booleans, null, arrays) yields
// *ErrUnexpectedShape.
func (id *ID) UnmarshalJSON(data []byte) error {
	t := bytes.TrimLeft(data, " \t\r\n")
	if len(t) == 0 {
		return &ErrUnexpectedShape{Shape: "empty input"}
	}
	switch t[0] {
	case '{':
		got, err := decodeExtJSONValue(data)
		if err != nil {
			return err
		}
		*id = got
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DecodeString(s)
		return nil
	case 't', 'f':
		return &ErrUnexpectedShape{Shape: "boolean"}
	case 'n':
		return &ErrUnexpectedShape{Shape: "null"}
	case '[':
		return &ErrUnexpectedShape{Shape: "array"}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		got, err := fromNumber(n)
		if err != nil {
			return err
		}
		*id = got
		return nil
	}
}

// FromAny converts a Go value into an ID.
//
// This exists as an adapter layer for user input and dynamically typed
// documents. Strings pass through the DecodeString marker rule; signed
// and unsigned integers become KindInt64, rejecting unsigned values
// beyond math.MaxInt64 with ErrIntegerRange; map and bson document types
// are reinterpreted as extended JSON values the way UnmarshalJSON treats
// objects. Everything else yields *ErrUnexpectedShape.
func FromAny(v any) (ID, error) {
	switch x := v.(type) {
	case nil:
		return ID{}, &ErrUnexpectedShape{Shape: "null"}
	case ID:
		return x, nil
	case primitive.ObjectID:
		return ObjectID(x), nil
	case uuid.UUID:
		return FromUUID(x), nil
	case string:
		return DecodeString(x), nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			// Avoid silently truncating large values.
			return ID{}, fmt.Errorf("%w: %d", ErrIntegerRange, x)
		}
		return Int64(int64(x)), nil
	case uint8:
		return Int64(int64(x)), nil
	case uint16:
		return Int64(int64(x)), nil
	case uint32:
		return Int64(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return ID{}, fmt.Errorf("%w: %d", ErrIntegerRange, x)
		}
		return Int64(int64(x)), nil
	case json.Number:
		return fromNumber(x)
	case bson.M:
		return fromDocument(x)
	case bson.D:
		return fromDocument(x)
	case map[string]any:
		return fromDocument(x)
	default:
		return ID{}, &ErrUnexpectedShape{Shape: fmt.Sprintf("%T", v)}
	}
}

// fromNumber folds a JSON number into the int64 variant. Fractional and
// exponent forms are shape errors; integer forms outside the int64 range
// are range errors.
func fromNumber(n json.Number) (ID, error) {
	i, err := n.Int64()
	if err == nil {
		return Int64(i), nil
	}
	if strings.ContainsAny(string(n), ".eE") {
		return ID{}, &ErrUnexpectedShape{Shape: fmt.Sprintf("number %s", n), cause: err}
	}
	return ID{}, fmt.Errorf("%w: %s", ErrIntegerRange, n)
}

// fromDocument reinterprets a map-shaped value as an extended JSON
// value, so {"$oid": "<24-hex>"} arrives as a BSON ObjectID rather than
// an embedded document.
func fromDocument(v any) (ID, error) {
	data, err := bson.MarshalExtJSON(v, false, false)
	if err != nil {
		return ID{}, fmt.Errorf("encode document value: %w", err)
	}
	return decodeExtJSONValue(data)
}

// decodeExtJSONValue parses a single JSON value as extended JSON and
// maps the resulting BSON value onto an ID. The value is wrapped in a
// one-field document so the driver applies its usual wrapper-key
// interpretation.
func decodeExtJSONValue(data []byte) (ID, error) {
	wrapped := make([]byte, 0, len(data)+len(`{"v":}`))
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, '}')

	var doc struct {
		V bson.RawValue `bson:"v"`
	}
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return ID{}, fmt.Errorf("decode extended json: %w", err)
	}
	return FromRawValue(doc.V)
}
