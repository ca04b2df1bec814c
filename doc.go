// Package docid provides a polymorphic identifier for records whose keys
// come from heterogeneous sources: MongoDB-style ObjectIDs, opaque
// strings, or signed 64-bit integers.
//
// An ID is a small immutable tagged union holding exactly one of the
// three variants. IDs are comparable, so they can be used directly as map
// keys; equality is variant-sensitive (Int64(7) never equals String("7")).
//
// # Quick Start
//
//	a := docid.MustObjectID("507f1f77bcf86cd799439011")
//	b := docid.String("user-settings")
//	c := docid.Int64(42)
//
//	fmt.Println(a.String()) // 507f1f77bcf86cd799439011
//	fmt.Println(a == b)     // false
//
// # Wire Encodings
//
// An ID speaks three wire protocols, each with its own rendering of the
// ObjectID variant:
//
//   - BSON (bson.ValueMarshaler/ValueUnmarshaler): native ObjectID,
//     string and int64 values. Decoding rejects every other BSON type.
//   - JSON (json.Marshaler/Unmarshaler): the document form
//     {"$oid":"<24-hex>"} for ObjectIDs, bare strings and bare integers
//     otherwise. Decoding additionally folds marker-form strings (see
//     below) back into ObjectIDs.
//   - GraphQL (package graphql): the marker form "$oid:<24-hex>" as a
//     plain string scalar, since the protocol has no object values in
//     scalar position.
//
// The document form {"$oid": ...} and the marker form "$oid:..." are
// deliberately distinct and must not be mixed: the first is an extended
// JSON object, the second a plain string prefix applied by DecodeString.
//
// # Marker Disambiguation
//
// A plain string is ambiguous: it may be an opaque identifier or an
// ObjectID smuggled through a text-only channel. DecodeString resolves
// this with the Marker prefix:
//
//	docid.DecodeString("$oid:507f1f77bcf86cd799439011") // ObjectID variant
//	docid.DecodeString("$oid:not-hex")                  // String variant, unchanged
//	docid.DecodeString("hello")                         // String variant
//
// Conversions that are not decode paths never disambiguate: String(),
// the String constructor and UnmarshalText all treat text verbatim.
package docid
