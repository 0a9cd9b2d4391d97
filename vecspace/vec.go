// Package vecspace provides the real-valued 3-vector and rotation
// primitives shared by the document model and the rendering core.
package vecspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a real-valued 3-vector. Integer voxel indices are carried as
// reals with exact integral values, per the document model.
type Vec3 = mgl64.Vec3

// degenerateEpsilon is the norm below which a direction vector is
// treated as degenerate rather than normalized.
const degenerateEpsilon = 1e-10

// New builds a Vec3 from components.
func New(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Floor floors each component independently.
func Floor(v Vec3) Vec3 {
	return Vec3{math.Floor(v[0]), math.Floor(v[1]), math.Floor(v[2])}
}

// FloorInt floors each component and truncates to int.
func FloorInt(v Vec3) [3]int {
	return [3]int{
		int(math.Floor(v[0])),
		int(math.Floor(v[1])),
		int(math.Floor(v[2])),
	}
}

// TruncInt truncates each component toward zero, matching the voxel
// grid's int(x) coercion of a position to a grid index (as opposed to
// FloorInt's round-toward-negative-infinity, used elsewhere).
func TruncInt(v Vec3) [3]int {
	return [3]int{int(v[0]), int(v[1]), int(v[2])}
}

// CanonKey is the canonical "x_y_z" string form used to hash an
// integer triple, e.g. as a VoxelGrid map key's external representation.
func CanonKey(i, j, k int) string {
	return fmt.Sprintf("%d_%d_%d", i, j, k)
}

// CanonString renders a Vec3 in its canonical "x_y_z" hashing form.
// Integral components are rendered without a decimal point so that
// round-tripping through ParseString reproduces the same key.
func CanonString(v Vec3) string {
	return fmt.Sprintf("%s_%s_%s", formatComponent(v[0]), formatComponent(v[1]), formatComponent(v[2]))
}

func formatComponent(c float64) string {
	if c == math.Trunc(c) {
		return strconv.FormatInt(int64(c), 10)
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// ParseString parses either the "x_y_z" or "x,y,z" canonical forms
// back into a Vec3. It returns false if the string does not split
// into exactly three numeric components.
func ParseString(s string) (Vec3, bool) {
	sep := "_"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Vec3{}, false
	}
	var v Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vec3{}, false
		}
		v[i] = f
	}
	return v, true
}

// IsDegenerate reports whether v's norm is at or below the threshold
// the ray marcher treats as a zero-length direction.
func IsDegenerate(v Vec3) bool {
	return v.Len() <= degenerateEpsilon
}

// SafeNormalize returns v/||v||, or v unchanged if v is degenerate
// (||v|| <= 1e-10), matching the Ray construction rule in the spec:
// a zero-vector direction is retained as-is rather than normalized.
func SafeNormalize(v Vec3) Vec3 {
	if IsDegenerate(v) {
		return v
	}
	return v.Normalize()
}

// Equal reports componentwise equality.
func Equal(a, b Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}
