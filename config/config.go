package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings is the full application configuration. Every field has a
// compiled-in default; a settings file only overrides what it names.
type Settings struct {
	Video  VideoSettings  `json:"video"`
	Render RenderSettings `json:"render"`
	Scene  SceneSettings  `json:"scene"`
	Stream StreamSettings `json:"stream"`
}

type VideoSettings struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	FOV    float32 `json:"fov"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

type RenderSettings struct {
	Workers int `json:"workers"`
}

type SceneSettings struct {
	Stars        int `json:"stars"`
	SphereDetail int `json:"sphereDetail"`
}

type StreamSettings struct {
	Addr       string `json:"addr"`
	IntervalMs int    `json:"intervalMs"`
}

// Default returns the compiled-in settings.
func Default() Settings {
	return Settings{
		Video: VideoSettings{
			Width:  800,
			Height: 600,
			FOV:    45,
			Near:   0.1,
			Far:    100,
		},
		Render: RenderSettings{
			Workers: 1,
		},
		Scene: SceneSettings{
			Stars:        800,
			SphereDetail: 3,
		},
		Stream: StreamSettings{
			Addr:       ":8080",
			IntervalMs: 100,
		},
	}
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error; the defaults are returned as-is.
func Load(path string) (Settings, error) {
	s := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return s, fmt.Errorf("error parsing %s: %v", path, err)
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	if s.Video.Width <= 0 || s.Video.Height <= 0 {
		return fmt.Errorf("invalid video size %dx%d", s.Video.Width, s.Video.Height)
	}
	if s.Video.Near <= 0 || s.Video.Far <= s.Video.Near {
		return fmt.Errorf("invalid depth range near=%v far=%v", s.Video.Near, s.Video.Far)
	}
	if s.Video.FOV <= 0 || s.Video.FOV >= 180 {
		return fmt.Errorf("invalid fov %v", s.Video.FOV)
	}
	return nil
}
