package docid

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FromRawValue maps a raw BSON value onto the matching ID variant.
//
// The BSON type tag selects the variant directly; no marker
// disambiguation applies. Types outside {ObjectID, string, int64} yield
// *ErrUnsupportedType.
func FromRawValue(rv bson.RawValue) (ID, error) {
	switch rv.Type {
	case bsontype.ObjectID:
		oid, ok := rv.ObjectIDOK()
		if !ok {
			return ID{}, fmt.Errorf("malformed bson %s value", rv.Type)
		}
		return ObjectID(oid), nil
	case bsontype.String:
		s, ok := rv.StringValueOK()
		if !ok {
			return ID{}, fmt.Errorf("malformed bson %s value", rv.Type)
		}
		return String(s), nil
	case bsontype.Int64:
		i, ok := rv.Int64OK()
		if !ok {
			return ID{}, fmt.Errorf("malformed bson %s value", rv.Type)
		}
		return Int64(i), nil
	default:
		return ID{}, &ErrUnsupportedType{Type: rv.Type}
	}
}

// RawValue encodes the ID as a raw BSON value.
//
// The mapping is total and lossless for the three variants: ObjectID,
// string and int64 values round-trip through FromRawValue exactly.
func (id ID) RawValue() (bson.RawValue, error) {
	t, data, err := id.MarshalBSONValue()
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: data}, nil
}

// MarshalBSONValue implements bson.ValueMarshaler, so an ID can sit in
// any struct field or document handed to the driver.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch id.kind {
	case KindObjectID:
		return bson.MarshalValue(id.oid)
	case KindString:
		return bson.MarshalValue(id.str)
	case KindInt64:
		return bson.MarshalValue(id.i64)
	default:
		return bsontype.Type(0), nil, ErrInvalidID
	}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	got, err := FromRawValue(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	*id = got
	return nil
}
