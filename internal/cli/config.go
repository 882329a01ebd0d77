// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds command defaults read from the environment. Flags take
// precedence over it.
type Config struct {
	MaxPoints int    `env:"LAPLACIAN_MAX_POINTS" envDefault:"4194304"`
	MaxDense  int    `env:"LAPLACIAN_MAX_DENSE" envDefault:"1024"`
	Format    string `env:"LAPLACIAN_FORMAT" envDefault:"triplet"`
}

// LoadConfig parses Config from environ. A nil environ means the process
// environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxPoints <= 0 {
		return Config{}, fmt.Errorf("parse env: LAPLACIAN_MAX_POINTS must be positive, have %d", cfg.MaxPoints)
	}
	if cfg.MaxDense < 0 {
		return Config{}, fmt.Errorf("parse env: LAPLACIAN_MAX_DENSE must not be negative, have %d", cfg.MaxDense)
	}
	if !isValidFormat(cfg.Format) {
		return Config{}, fmt.Errorf("parse env: invalid LAPLACIAN_FORMAT %q: must be one of %v", cfg.Format, ValidFormats)
	}
	return cfg, nil
}
