package notation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/notation"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []domain.Cycle
	}{
		{"Empty", "", []domain.Cycle{}},
		{"Blank", "  \t\n", []domain.Cycle{}},
		{"Single", "(0,1,2)", []domain.Cycle{{0, 1, 2}}},
		{"SpaceSeparated", "(3 2 1)", []domain.Cycle{{3, 2, 1}}},
		{"MixedSeparators", "( 0 , 1 2 ,3 )", []domain.Cycle{{0, 1, 2, 3}}},
		{"Multiple", "(0,1)(2,3)", []domain.Cycle{{0, 1}, {2, 3}}},
		{"MultipleSpaced", " (0,1)  (4 5 6) ", []domain.Cycle{{0, 1}, {4, 5, 6}}},
		{"EmptyGroup", "()", []domain.Cycle{{}}},
		{"FixedPoint", "(7)", []domain.Cycle{{7}}},
		{"OrderKept", "(2,0,1)", []domain.Cycle{{2, 0, 1}}},
	}
	p := notation.NewParser(8)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		offending string
		offset    int
	}{
		{"UnclosedGroup", "(0,1", "(0,1", 0},
		{"UnclosedSecondGroup", "(0,1)(2", "(2", 5},
		{"StrayClose", "(0,1))", ")", 5},
		{"NoParens", "0,1", "0", 0},
		{"Letter", "(0,a)", "a", 3},
		{"Negative", "(-1,2)", "-1", 1},
		{"Glued", "(0x1)", "0x1", 1},
		{"DoubleComma", "(0,,1)", ",", 3},
		{"TrailingComma", "(0,1,)", ")", 5},
		{"Nested", "((0,1))", "(", 1},
		{"OutOfRange", "(0,9)", "9", 3},
		{"Garbage", "(0,1) x", "x", 6},
	}
	p := notation.NewParser(8)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Parse(tc.text)
			var pe *notation.ParseError
			require.True(t, errors.As(err, &pe), "Parse(%q) error = %v; want ParseError", tc.text, err)
			assert.Equal(t, tc.offending, pe.Offending)
			assert.Equal(t, tc.offset, pe.Offset)
			assert.Equal(t, tc.text, pe.Text)
			assert.Contains(t, pe.Error(), "notation:")
		})
	}
}

func TestParseWithoutRangeCheck(t *testing.T) {
	got, err := notation.NewParser(0).Parse("(100,2000)")
	require.NoError(t, err)
	assert.Equal(t, []domain.Cycle{{100, 2000}}, got)
}

func TestFormatRoundTrip(t *testing.T) {
	in := []domain.Cycle{{0, 3, 1}, {}, {5}, {2, 4}}
	text := notation.Format(in)
	assert.Equal(t, "(0,3,1)()(5)(2,4)", text)

	back, err := notation.NewParser(6).Parse(text)
	require.NoError(t, err)
	assert.Equal(t, in, back)

	assert.Equal(t, "", notation.Format(nil))
}
