package docid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validHex = "507f1f77bcf86cd799439011"

func TestConstructorsAndKinds(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	tests := []struct {
		name string
		id   ID
		kind Kind
	}{
		{"ObjectID", ObjectID(oid), KindObjectID},
		{"String", String("hello"), KindString},
		{"Int64", Int64(42), KindInt64},
		{"Zero", ID{}, KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.id.Kind())
			assert.Equal(t, tt.kind == KindInvalid, tt.id.IsZero())
		})
	}
}

func TestAccessors(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	t.Run("ObjectID", func(t *testing.T) {
		id := ObjectID(oid)

		got, ok := id.AsObjectID()
		require.True(t, ok)
		assert.Equal(t, oid, got)

		_, ok = id.AsString()
		assert.False(t, ok)
		_, ok = id.AsInt64()
		assert.False(t, ok)
	})

	t.Run("String", func(t *testing.T) {
		id := String("hello")

		got, ok := id.AsString()
		require.True(t, ok)
		assert.Equal(t, "hello", got)

		_, ok = id.AsObjectID()
		assert.False(t, ok)
		_, ok = id.AsInt64()
		assert.False(t, ok)
	})

	t.Run("Int64", func(t *testing.T) {
		id := Int64(-7)

		got, ok := id.AsInt64()
		require.True(t, ok)
		assert.Equal(t, int64(-7), got)

		_, ok = id.AsObjectID()
		assert.False(t, ok)
		_, ok = id.AsString()
		assert.False(t, ok)
	})
}

func TestEqualityIsVariantSensitive(t *testing.T) {
	oid := MustObjectID(validHex)

	assert.True(t, Int64(7).Equal(Int64(7)))
	assert.True(t, String("7").Equal(String("7")))
	assert.True(t, oid.Equal(MustObjectID(validHex)))

	// Same canonical rendering, different variants.
	assert.False(t, Int64(7).Equal(String("7")))
	assert.False(t, oid.Equal(String(validHex)))
	assert.False(t, Int64(7).Equal(oid))

	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, Int64(1).Equal(Int64(2)))
	assert.False(t, ID{}.Equal(Int64(0)))
}

func TestIDAsMapKey(t *testing.T) {
	m := map[ID]string{
		MustObjectID(validHex): "oid",
		String(validHex):       "str",
		Int64(7):               "int",
		String("7"):            "seven",
	}

	assert.Len(t, m, 4)
	assert.Equal(t, "oid", m[MustObjectID(validHex)])
	assert.Equal(t, "str", m[String(validHex)])
	assert.Equal(t, "int", m[Int64(7)])
	assert.Equal(t, "seven", m[String("7")])
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"ObjectID", MustObjectID(validHex), validHex},
		{"String", String("hello"), "hello"},
		{"StringWithMarker", String("$oid:not-hex"), "$oid:not-hex"},
		{"Int64", Int64(42), "42"},
		{"NegativeInt64", Int64(-42), "-42"},
		{"Zero", ID{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())
		})
	}
}

func TestStringUppercaseHexCanonicalizes(t *testing.T) {
	id, err := ParseObjectID("507F1F77BCF86CD799439011")
	require.NoError(t, err)
	assert.Equal(t, validHex, id.String())
}

func TestParseObjectID(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		id, err := ParseObjectID(validHex)
		require.NoError(t, err)
		assert.Equal(t, KindObjectID, id.Kind())
		assert.Equal(t, validHex, id.String())
	})

	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"TooShort", "507f1f77"},
		{"TooLong", validHex + "ff"},
		{"NotHex", "zzzf1f77bcf86cd799439011"},
		{"Marker", Marker + validHex}, // the marker is not part of the hex form
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObjectID(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestMustObjectID(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustObjectID(validHex)
	})
	assert.Panics(t, func() {
		_ = MustObjectID("not-hex")
	})
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"Marked", Marker + validHex, MustObjectID(validHex)},
		{"MarkedUppercase", Marker + "507F1F77BCF86CD799439011", MustObjectID(validHex)},
		{"MarkedBadHex", Marker + "not-hex", String(Marker + "not-hex")},
		{"MarkedShortHex", Marker + "507f1f77", String(Marker + "507f1f77")},
		{"MarkerOnly", Marker, String(Marker)},
		{"Plain", "hello", String("hello")},
		{"BareHex", validHex, String(validHex)}, // no marker, stays text
		{"Empty", "", String("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeString(tt.input))
		})
	}
}

func TestToObjectID(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	t.Run("FromObjectID", func(t *testing.T) {
		got, err := ObjectID(oid).ToObjectID()
		require.NoError(t, err)
		assert.Equal(t, oid, got)
	})

	t.Run("FromHexString", func(t *testing.T) {
		got, err := String(validHex).ToObjectID()
		require.NoError(t, err)
		assert.Equal(t, oid, got)
	})

	t.Run("FromOpaqueString", func(t *testing.T) {
		_, err := String("hello").ToObjectID()
		assert.Error(t, err)
	})

	t.Run("FromInt64", func(t *testing.T) {
		// Decimal renderings are at most 20 characters, never valid hex form.
		_, err := Int64(42).ToObjectID()
		assert.Error(t, err)
	})

	t.Run("FromZero", func(t *testing.T) {
		_, err := ID{}.ToObjectID()
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestObjectIDRoundTrip(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	got, err := ObjectID(oid).ToObjectID()
	require.NoError(t, err)
	assert.Equal(t, validHex, got.Hex())
}

func TestFromUUID(t *testing.T) {
	u := uuid.MustParse("9a4ec558-9a09-44a2-9a0c-92ab5192fc9a")

	id := FromUUID(u)
	assert.Equal(t, KindString, id.Kind())
	assert.Equal(t, u.String(), id.String())
}

func TestTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{"ObjectID", MustObjectID(validHex), validHex},
		{"String", String("hello"), "hello"},
		{"Int64", Int64(42), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.id.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))

			// Text decoding never disambiguates.
			var got ID
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, String(tt.want), got)
		})
	}
}

func TestMarshalTextZero(t *testing.T) {
	_, err := ID{}.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUnmarshalTextKeepsMarker(t *testing.T) {
	var id ID
	require.NoError(t, id.UnmarshalText([]byte(Marker+validHex)))
	assert.Equal(t, String(Marker+validHex), id)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "objectid", KindObjectID.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "int64", KindInt64.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "invalid", Kind(99).String())
}
