package x3dgeom

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrings(t *testing.T) {
	for input, want := range map[string][]string{
		``:                     nil,
		`plain text`:           {"plain text"},
		`"a" "b"`:              {"a", "b"},
		`"a", "b c"`:           {"a", "b c"},
		`"back\\slash" "q\"t"`: {`back\slash`, `q"t`},
		`""`:                   {""},
	} {
		got, err := parseStrings(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{`"open`, `"a" b`} {
		_, err := parseStrings(input)
		assert.Error(t, err, input)
	}
}

func TestParseVec2List(t *testing.T) {
	got, err := parseVec2List(" 1,2  3\n4 ")
	require.NoError(t, err)
	assert.Equal(t, []v2.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}}, got)

	got, err = parseVec2List("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseVec2List("1 2 3")
	assert.Error(t, err)
	_, err = parseVec2List("1 x")
	assert.Error(t, err)
}

func TestParseBool(t *testing.T) {
	for input, want := range map[string]bool{"true": true, "TRUE": true, " false ": false, "FALSE": false} {
		got, err := parseBool(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseBool("True")
	assert.Error(t, err)

	bs, err := parseBools("true, FALSE true")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, bs)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts("1, -2 0x10 010 -0XfF +7")
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2, 16, 10, -255, 7}, got)

	for _, input := range []string{"4294967296", "1_000", "0b11", "0o7", "0x", "0x-5", "1.5"} {
		_, err = parseInts(input)
		assert.Error(t, err, input)
	}
}

func TestParseFloat(t *testing.T) {
	f, err := parseFloat(" -1.5e2 ")
	require.NoError(t, err)
	assert.Equal(t, -150., f)

	for _, input := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e400"} {
		_, err = parseFloat(input)
		assert.Error(t, err, input)
		_, err = parseFloats("1 " + input)
		assert.Error(t, err, input)
	}
}

func TestDefUseAttrs(t *testing.T) {
	def, use, err := (&tag{name: "Circle2D"}).defUse()
	require.NoError(t, err)
	assert.Empty(t, def)
	assert.Empty(t, use)
}
