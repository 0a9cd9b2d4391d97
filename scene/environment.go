package scene

import "github.com/voxelcast/voxelcast/vecspace"

// EnvironmentKind discriminates the three Environment cases.
type EnvironmentKind int

const (
	EnvNone EnvironmentKind = iota
	EnvSolidColor
	EnvSkyGround
)

// LightValue is an RGB light-emission triple. It has the same shape
// as a Vec3 but is kept as a distinct name since it is never treated
// as a position or direction.
type LightValue = vecspace.Vec3

// Environment maps a missed ray to a background color. The
// diffusion/algorithm/emission fields are loaded from the document
// and carried through, but no renderer in this package consults them
// (SPEC_FULL.md §3 expansion: lighting is out of scope for the
// ray-casting core, but the data survives a load/render round trip).
type Environment struct {
	Kind   EnvironmentKind
	Color  Color // EnvSolidColor
	Sky    Color // EnvSkyGround
	Ground Color // EnvSkyGround

	LightDiffusionStrength float64
	LightAlgorithm         string

	ColorEmission  LightValue // EnvSolidColor
	SkyEmission    LightValue // EnvSkyGround
	GroundEmission LightValue // EnvSkyGround
	SunDirection   vecspace.Vec3
	SunEmission    LightValue
}

// Sample implements the environment sampling rule: None returns
// transparent black; SolidColor returns its color; SkyGround returns
// sky when dir.Y is strictly positive, else ground.
func (e Environment) Sample(dir vecspace.Vec3) Color {
	switch e.Kind {
	case EnvSolidColor:
		return e.Color
	case EnvSkyGround:
		if dir[1] > 0 {
			return e.Sky
		}
		return e.Ground
	default:
		return Transparent
	}
}
