package vecspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonStringRoundTrip(t *testing.T) {
	v := New(3, -4, 0)
	s := CanonString(v)
	assert.Equal(t, "3_-4_0", s)

	parsed, ok := ParseString(s)
	assert.True(t, ok)
	assert.True(t, Equal(v, parsed))
}

func TestCanonStringRoundTripFractional(t *testing.T) {
	v := New(1.5, 2.25, -3.75)
	parsed, ok := ParseString(CanonString(v))
	assert.True(t, ok)
	assert.True(t, Equal(v, parsed))
}

func TestParseStringCommaForm(t *testing.T) {
	v, ok := ParseString("1,2,3")
	assert.True(t, ok)
	assert.True(t, Equal(v, New(1, 2, 3)))
}

func TestParseStringRejectsMalformed(t *testing.T) {
	_, ok := ParseString("1_2")
	assert.False(t, ok)
	_, ok = ParseString("a_b_c")
	assert.False(t, ok)
}

func TestFloorInt(t *testing.T) {
	assert.Equal(t, [3]int{1, -2, 3}, FloorInt(New(1.9, -1.1, 3.0)))
}

func TestSafeNormalizeDegenerate(t *testing.T) {
	zero := New(0, 0, 0)
	assert.True(t, Equal(zero, SafeNormalize(zero)))
}

func TestSafeNormalizeUnit(t *testing.T) {
	v := New(3, 4, 0)
	n := SafeNormalize(v)
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestEulerXYZIdentity(t *testing.T) {
	m := EulerXYZ(0, 0, 0)
	v := New(1, 2, 3)
	out := Apply(m, v)
	assert.InDelta(t, v[0], out[0], 1e-9)
	assert.InDelta(t, v[1], out[1], 1e-9)
	assert.InDelta(t, v[2], out[2], 1e-9)
}

func TestEulerXYZRotatesZAboutX90(t *testing.T) {
	// Rotating (0,0,1) by pi/2 about X should land near (0,-1,0) or
	// (0,1,0) depending on handedness (mathgl convention).
	m := EulerXYZ(math.Pi/2, 0, 0)
	out := Apply(m, New(0, 0, 1))
	assert.InDelta(t, 0.0, out[0], 1e-9)
	assert.True(t, math.Abs(out[1]+1) < 1e-9 || math.Abs(out[1]-1) < 1e-9)
}
