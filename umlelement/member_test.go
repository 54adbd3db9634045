package umlelement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlelement"
)

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"":          "str",
		"String":    "str",
		" Integer ": "int",
		"double":    "float",
		"boolean":   "bool",
		"DateTime":  "datetime",
		"object":    "any",
		"Customer":  "Customer",
	}
	for in, exp := range testCases {
		assert.Equal(t, exp, umlelement.NormalizeType(in), in)
	}
}

func TestParseNameFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in  string
		exp umlelement.ParsedName
	}{
		{
			in:  "+ name: String",
			exp: umlelement.ParsedName{Visibility: umlelement.Public, Name: "name", AttributeType: "str"},
		},
		{
			in:  "-balance:double",
			exp: umlelement.ParsedName{Visibility: umlelement.Private, Name: "balance", AttributeType: "float"},
		},
		{
			in:  "# owner",
			exp: umlelement.ParsedName{Visibility: umlelement.Protected, Name: "owner", AttributeType: "str"},
		},
		{
			in:  "~ tags: list[str]",
			exp: umlelement.ParsedName{Visibility: umlelement.PackageVisibility, Name: "tags", AttributeType: "list[str]"},
		},
		{
			in:  "count: Integer",
			exp: umlelement.ParsedName{Visibility: umlelement.Public, Name: "count", AttributeType: "int"},
		},
		{
			in:  "  plain  ",
			exp: umlelement.ParsedName{Visibility: umlelement.Public, Name: "plain", AttributeType: "str"},
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.exp, umlelement.ParseNameFormat(tc.in), tc.in)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	attr := umlelement.New(umlelement.Partial{
		Kind:       go2.Pointer(umlelement.ClassAttribute),
		Name:       go2.Pointer("total"),
		Visibility: go2.Pointer(umlelement.Protected),
	})
	assert.Equal(t, "# total: str", attr.DisplayName())

	legacy := umlelement.New(umlelement.Partial{
		Kind: go2.Pointer(umlelement.ClassAttribute),
		Name: go2.Pointer("- total: int"),
	})
	assert.Equal(t, "- total: int", legacy.DisplayName())

	class := umlelement.New(umlelement.Partial{Name: go2.Pointer("Order")})
	assert.Equal(t, "Order", class.DisplayName())
}

func TestVisibilitySymbol(t *testing.T) {
	t.Parallel()

	for _, v := range []umlelement.Visibility{umlelement.Public, umlelement.Private, umlelement.Protected, umlelement.PackageVisibility} {
		v2, ok := umlelement.VisibilityFromSymbol(v.Symbol())
		assert.True(t, ok)
		assert.Equal(t, v, v2)
	}
	assert.Equal(t, "+", umlelement.Visibility("unknown").Symbol())
}
