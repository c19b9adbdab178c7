package hypview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the session defaults a front end may override from a YAML
// file. Zero-valued fields fall back to the built-in defaults, so a partial
// file is fine.
type Config struct {
	Fov float64 `yaml:"fov"`

	Navigation struct {
		TranslationVelocity float64 `yaml:"translationVelocity"`
		RotationVelocity    float64 `yaml:"rotationVelocity"`
	} `yaml:"navigation"`

	Quality struct {
		MaxSteps      int     `yaml:"maxSteps"`
		MaxDist       float64 `yaml:"maxDist"`
		SubpixelCount float64 `yaml:"subpixelCount"`
	} `yaml:"quality"`

	Light struct {
		Bias       float64 `yaml:"bias"`
		Falloff    float64 `yaml:"falloff"`
		Brightness float64 `yaml:"brightness"`
	} `yaml:"light"`

	Debug bool `yaml:"debug"`
}

func DefaultConfig() Config {
	var c Config
	c.Fov = 90
	c.Navigation.TranslationVelocity = defaultTranslationVelocity
	c.Navigation.RotationVelocity = defaultRotationVelocity
	c.Quality.MaxSteps = 20
	c.Quality.MaxDist = 17
	c.Quality.SubpixelCount = 1
	c.Light.Bias = 2
	c.Light.Falloff = 1.65
	c.Light.Brightness = 1.9
	return c
}

// LoadConfig reads a YAML config file, filling unset fields from the
// defaults. A missing file is not an error; malformed YAML is.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	mergeConfig(&c, loaded)
	return c, nil
}

func mergeConfig(dst *Config, src Config) {
	if src.Fov != 0 {
		dst.Fov = src.Fov
	}
	if src.Navigation.TranslationVelocity != 0 {
		dst.Navigation.TranslationVelocity = src.Navigation.TranslationVelocity
	}
	if src.Navigation.RotationVelocity != 0 {
		dst.Navigation.RotationVelocity = src.Navigation.RotationVelocity
	}
	if src.Quality.MaxSteps != 0 {
		dst.Quality.MaxSteps = src.Quality.MaxSteps
	}
	if src.Quality.MaxDist != 0 {
		dst.Quality.MaxDist = src.Quality.MaxDist
	}
	if src.Quality.SubpixelCount != 0 {
		dst.Quality.SubpixelCount = src.Quality.SubpixelCount
	}
	if src.Light.Bias != 0 {
		dst.Light.Bias = src.Light.Bias
	}
	if src.Light.Falloff != 0 {
		dst.Light.Falloff = src.Light.Falloff
	}
	if src.Light.Brightness != 0 {
		dst.Light.Brightness = src.Light.Brightness
	}
	dst.Debug = dst.Debug || src.Debug
}
