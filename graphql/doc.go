// Package graphql exposes docid.ID as a GraphQL scalar.
//
// The scalar protocol has no object values in scalar position, so the
// document form {"$oid": ...} used by JSON is unavailable here. Instead
// ObjectIDs travel as plain strings carrying the docid.Marker prefix:
//
//	"$oid:507f1f77bcf86cd799439011"
//
// Strings and integers map onto String and Int tokens directly. GraphQL
// Int is 32 bits wide, so KindInt64 values outside that range are
// rejected with ErrIntOutOfRange rather than truncated.
//
// # Encoding
//
//	v, err := graphql.Marshal(docid.MustObjectID("507f1f77bcf86cd799439011"))
//	// v.Kind == ast.StringValue, v.Raw == "$oid:507f1f77bcf86cd799439011"
//
// # Decoding
//
// Unmarshal accepts String and Int tokens, applying the same marker rule
// as docid.DecodeString; every other token kind yields
// *ErrUnexpectedToken naming the offending kind.
//
// The package depends only on gqlparser's ast types; it works with any
// server runtime that surfaces argument literals as *ast.Value.
package graphql
