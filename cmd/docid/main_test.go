package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/docid"
)

const validHex = "507f1f77bcf86cd799439011"

func TestDecodeArg(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		asText bool
		want   docid.ID
	}{
		{"Int", "42", false, docid.Int64(42)},
		{"NegativeInt", "-7", false, docid.Int64(-7)},
		{"Marked", docid.Marker + validHex, false, docid.MustObjectID(validHex)},
		{"MarkedBadHex", docid.Marker + "not-hex", false, docid.String(docid.Marker + "not-hex")},
		{"Plain", "hello", false, docid.String("hello")},
		{"ExtJSONObjectID", `{"$oid":"` + validHex + `"}`, false, docid.MustObjectID(validHex)},
		{"TextForcesString", "42", true, docid.String("42")},
		{"TextKeepsMarker", docid.Marker + validHex, true, docid.String(docid.Marker + validHex)},
		{"TextKeepsJSON", `{"$oid":"x"}`, true, docid.String(`{"$oid":"x"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeArg(tt.arg, tt.asText)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildReport(t *testing.T) {
	t.Run("ObjectID", func(t *testing.T) {
		r := buildReport(docid.Marker+validHex, docid.MustObjectID(validHex))
		assert.Equal(t, docid.Marker+validHex, r.Value)
		assert.Equal(t, "objectid", r.Kind)
		assert.Equal(t, validHex, r.Canonical)
		assert.JSONEq(t, `{"$oid":"`+validHex+`"}`, string(r.JSON))
		assert.Equal(t, `"$oid:`+validHex+`"`, r.GraphQL)
		assert.NotEmpty(t, r.Timestamp)
	})

	t.Run("String", func(t *testing.T) {
		r := buildReport("hello", docid.String("hello"))
		assert.Equal(t, "string", r.Kind)
		assert.Equal(t, "hello", r.Canonical)
		assert.JSONEq(t, `"hello"`, string(r.JSON))
		assert.Equal(t, `"hello"`, r.GraphQL)
		assert.Empty(t, r.Timestamp)
	})

	t.Run("IntBeyondGraphQLRange", func(t *testing.T) {
		// Encodings that reject the value are left out of the report.
		r := buildReport("9223372036854775807", docid.Int64(math.MaxInt64))
		assert.Equal(t, "int64", r.Kind)
		assert.JSONEq(t, `9223372036854775807`, string(r.JSON))
		assert.Empty(t, r.GraphQL)
		assert.Empty(t, r.Timestamp)
	})
}

func TestDecodeArgErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"MalformedJSON", `{nope`},
		{"PlainDocument", `{"foo":"bar"}`},
		{"MalformedOIDWrapper", `{"$oid":"not-hex"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeArg(tt.arg, false)
			assert.Error(t, err)
		})
	}
}
