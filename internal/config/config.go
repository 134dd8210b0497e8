package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	simplesvg "github.com/adishavit/simple-svg"
)

// Config holds the demo settings, read from SVGDEMO_* environment variables.
type Config struct {
	Output   string           `envconfig:"OUTPUT" default:"my_svg.svg"`
	Width    float64          `envconfig:"WIDTH" default:"500"`
	Height   float64          `envconfig:"HEIGHT" default:"500"`
	Origin   simplesvg.Origin `envconfig:"ORIGIN" default:"BottomLeft"`
	Scale    float64          `envconfig:"SCALE" default:"1"`
	Preview  string           `envconfig:"PREVIEW"`
	LogLevel slog.Level       `envconfig:"LOG_LEVEL" default:"info"`
	// MarkupRotation writes rotation centers in markup space.
	MarkupRotation bool `envconfig:"MARKUP_ROTATION" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("svgdemo", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Layout returns the document layout described by the config.
func (c *Config) Layout() simplesvg.Layout {
	return simplesvg.NewLayout(simplesvg.Dimensions{Width: c.Width, Height: c.Height}, c.Origin).
		WithScale(c.Scale).
		WithMarkupRotation(c.MarkupRotation)
}
