package docio

import "github.com/voxelcast/voxelcast/scene"

// parseEnvironment parses the document's environment block. The
// environment_type discriminator selects which of the three shapes to
// read: "none" (default), "color", or "skybox".
func parseEnvironment(doc map[string]any) scene.Environment {
	envType, _ := getOr(doc, "environment_type", "none").(string)

	env := scene.Environment{
		LightDiffusionStrength: asFloat(getOr(doc, "light_diffusion_strength", 0.99)),
		LightAlgorithm:         stringOr(doc, "light_algorithm", "none"),
	}

	switch envType {
	case "color":
		env.Kind = scene.EnvSolidColor
		env.Color = parseColor(getOr(doc, "environment_color", []any{255.0, 255.0, 255.0, 255.0}), nil)
		env.ColorEmission = parseLightValue(getOr(doc, "environment_color_light_emission", []any{1.0, 1.0, 1.0}))
	case "skybox":
		env.Kind = scene.EnvSkyGround
		env.Sky = parseColor(getOr(doc, "sky_color", []any{145.0, 200.0, 228.0, 255.0}), nil)
		env.SkyEmission = parseLightValue(getOr(doc, "sky_color_light_emission", []any{1.0, 1.0, 1.0}))
		env.Ground = parseColor(getOr(doc, "ground_color", []any{32.0, 94.0, 97.0, 255.0}), nil)
		env.GroundEmission = parseLightValue(getOr(doc, "ground_color_light_emission", []any{1.0, 1.0, 1.0}))
		env.SunDirection = parseVec3(getOr(doc, "sun_direction", nil))
		env.SunEmission = parseLightValue(getOr(doc, "sun_light_emission", []any{10.0, 10.0, 10.0}))
	default:
		env.Kind = scene.EnvNone
	}

	return env
}

func stringOr(obj map[string]any, key, def string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return def
}
