/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package trove

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultInitialCapacity is the amount of slots a new pool starts with
const DefaultInitialCapacity = 16

// DefaultConfig returns the config with DefaultInitialCapacity and debug mode off
func DefaultConfig() Config {
	return Config{InitialCapacity: DefaultInitialCapacity}
}

// LoadConfig reads a TOML config file. Keys that are not set keep their DefaultConfig() values
//
//	initial_capacity = 64
//	debug = true
//	verbosity = 2
//	log_path = "/var/log/trove.log"
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = DefaultInitialCapacity
	}
	return cfg, nil
}
