// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import "os"

// Defaults applied to empty Config fields.
const (
	DefaultModel    = "Frame"
	DefaultDataType = "float"
)

// Environment variables read by DefaultConfig.
const (
	EnvModel    = "ACTBIND_MODEL"
	EnvDataType = "ACTBIND_DATATYPE"
)

// QuantizerOption is the option name whose value is attached as the
// activation's quantizer instead of being set as a numeric parameter.
const QuantizerOption = "quantizer"

// Config selects the native implementation of an activation and carries its options.
type Config struct {
	// Model is the backend identifier, e.g. "Frame". Empty means DefaultModel.
	Model string
	// DataType is the numeric type identifier, e.g. "float". Empty means DefaultDataType.
	DataType string
	// Options are applied to the native object after construction, in name order.
	Options map[string]any
}

// DefaultConfig returns a Config with Model and DataType taken from the
// ACTBIND_MODEL and ACTBIND_DATATYPE environment variables, if set, and the
// package defaults otherwise. The environment is read once, when called.
func DefaultConfig() Config {
	cfg := Config{Model: DefaultModel, DataType: DefaultDataType}
	if model, found := os.LookupEnv(EnvModel); found && model != "" {
		cfg.Model = model
	}
	if dtype, found := os.LookupEnv(EnvDataType); found && dtype != "" {
		cfg.DataType = dtype
	}
	return cfg
}

// WithOption returns a copy of c with one more option set.
func (c Config) WithOption(name string, value any) Config {
	opts := make(map[string]any, len(c.Options)+1)
	for k, v := range c.Options {
		opts[k] = v
	}
	opts[name] = value
	c.Options = opts
	return c
}

// Key returns the composite key "model<datatype>", after defaults.
func (c Config) Key() string {
	c = c.withDefaults()
	return compositeKey(c.Model, c.DataType)
}

func (c Config) withDefaults() Config {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.DataType == "" {
		c.DataType = DefaultDataType
	}
	return c
}

func compositeKey(model, datatype string) string {
	return model + "<" + datatype + ">"
}
