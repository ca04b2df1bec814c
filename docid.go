package docid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Marker is the prefix that tags the string form of an ObjectID in
// text-only channels.
//
// It is applied by the GraphQL scalar encoding and recognized by
// DecodeString; it never appears in the canonical rendering produced by
// String.
const Marker = "$oid:"

// Kind identifies the concrete variant stored in an ID.
type Kind uint8

const (
	// KindInvalid represents the zero ID, which holds no variant.
	KindInvalid Kind = iota
	// KindObjectID represents a 12-byte ObjectID.
	KindObjectID
	// KindString represents an opaque string.
	KindString
	// KindInt64 represents a signed 64-bit integer.
	KindInt64
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObjectID:
		return "objectid"
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	default:
		return "invalid"
	}
}

// ID is a compact tagged union over the three identifier types found in
// document stores: ObjectIDs, strings and 64-bit integers.
//
// IDs are immutable values. They are comparable and can be used directly
// as map keys; two IDs are equal only if they hold the same variant with
// the same payload, so Int64(7) never equals String("7").
//
// The zero ID holds no variant and is rejected by every encode path.
type ID struct {
	kind Kind
	oid  primitive.ObjectID
	str  string
	i64  int64
}

// ObjectID returns an ID holding oid.
func ObjectID(oid primitive.ObjectID) ID { return ID{kind: KindObjectID, oid: oid} }

// String returns an ID holding s verbatim.
//
// No marker disambiguation is applied; use DecodeString for input that
// may carry an encoded ObjectID.
func String(s string) ID { return ID{kind: KindString, str: s} }

// Int64 returns an ID holding i.
func Int64(i int64) ID { return ID{kind: KindInt64, i64: i} }

// FromUUID returns an ID holding the canonical string form of u.
//
// UUID-keyed records travel as opaque strings; there is no dedicated
// variant for them.
func FromUUID(u uuid.UUID) ID { return String(u.String()) }

// ParseObjectID parses s as a 24-character hex ObjectID and returns the
// ObjectID variant.
//
// Unlike DecodeString it never falls back to the String variant; a
// malformed input is reported to the caller.
func ParseObjectID(s string) (ID, error) {
	oid, err := parseObjectIDHex(s)
	if err != nil {
		return ID{}, err
	}
	return ObjectID(oid), nil
}

// MustObjectID is like ParseObjectID but panics on malformed input.
//
// It is intended for fixtures and package-level identifiers whose
// validity is known up front.
func MustObjectID(s string) ID {
	id, err := ParseObjectID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// DecodeString decodes s under the marker rule shared by the wire
// protocols.
//
// Marker followed by a valid 24-character hex ObjectID yields the
// ObjectID variant. Anything else, including a marker whose remainder is
// malformed, yields the String variant holding s unchanged.
func DecodeString(s string) ID {
	if rest, ok := strings.CutPrefix(s, Marker); ok {
		if oid, err := primitive.ObjectIDFromHex(rest); err == nil {
			return ObjectID(oid)
		}
	}
	return String(s)
}

// Kind returns the variant held by the ID.
func (id ID) Kind() Kind { return id.kind }

// IsZero reports whether the ID is the zero value.
func (id ID) IsZero() bool { return id.kind == KindInvalid }

// Equal reports whether id and other hold the same variant with the same
// payload.
func (id ID) Equal(other ID) bool { return id == other }

// AsObjectID returns the ObjectID payload if Kind is KindObjectID.
func (id ID) AsObjectID() (primitive.ObjectID, bool) {
	if id.kind != KindObjectID {
		return primitive.NilObjectID, false
	}
	return id.oid, true
}

// AsString returns the string payload if Kind is KindString.
func (id ID) AsString() (string, bool) {
	if id.kind != KindString {
		return "", false
	}
	return id.str, true
}

// AsInt64 returns the int64 payload if Kind is KindInt64.
func (id ID) AsInt64() (int64, bool) {
	if id.kind != KindInt64 {
		return 0, false
	}
	return id.i64, true
}

// String returns the canonical plain rendering: 24 lower-case hex
// characters for KindObjectID, the string itself for KindString, decimal
// digits for KindInt64.
//
// The rendering never carries the marker prefix. The zero ID renders as
// the empty string.
func (id ID) String() string {
	switch id.kind {
	case KindObjectID:
		return id.oid.Hex()
	case KindString:
		return id.str
	case KindInt64:
		return strconv.FormatInt(id.i64, 10)
	default:
		return ""
	}
}

// ToObjectID converts the ID to a primitive.ObjectID.
//
// KindObjectID returns its payload directly. KindString parses the
// string as 24-character hex. KindInt64 parses its decimal rendering the
// same way and therefore always fails: no int64 renders to 24 digits.
func (id ID) ToObjectID() (primitive.ObjectID, error) {
	switch id.kind {
	case KindObjectID:
		return id.oid, nil
	case KindString:
		return parseObjectIDHex(id.str)
	case KindInt64:
		return parseObjectIDHex(strconv.FormatInt(id.i64, 10))
	default:
		return primitive.NilObjectID, ErrInvalidID
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical
// plain rendering. The zero ID cannot be marshaled.
func (id ID) MarshalText() ([]byte, error) {
	if id.kind == KindInvalid {
		return nil, ErrInvalidID
	}
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is taken
// verbatim as a String variant; unlike DecodeString no ObjectID recovery
// is attempted.
func (id *ID) UnmarshalText(text []byte) error {
	*id = String(string(text))
	return nil
}

func parseObjectIDHex(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse objectid %q: %w", s, err)
	}
	return oid, nil
}
