// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"maps"
	"slices"

	"github.com/born-ml/actbind/internal/backend/cpu"
	"github.com/born-ml/actbind/internal/engine"
	"github.com/born-ml/actbind/internal/tensor"
)

// generatorTable maps composite keys to native constructors for one kind.
// Tables are filled during package initialization and only read afterwards.
type generatorTable struct {
	kind     Kind
	creators map[string]engine.Creator
}

func newGeneratorTable(kind Kind, creators map[string]engine.Creator) *generatorTable {
	return &generatorTable{kind: kind, creators: creators}
}

// register adds or replaces the constructor for key.
func (t *generatorTable) register(key string, creator engine.Creator) {
	t.creators[key] = creator
}

// lookup returns the constructor for key, or a *LookupError.
func (t *generatorTable) lookup(key string) (engine.Creator, error) {
	creator, found := t.creators[key]
	if !found {
		return nil, &LookupError{Kind: t.kind.String(), Key: key, Supported: t.keys()}
	}
	return creator, nil
}

// keys returns the registered composite keys, sorted.
func (t *generatorTable) keys() []string {
	return slices.Sorted(maps.Keys(t.creators))
}

var cpuBackend = cpu.New()

// cpuCreators builds the CPU part of a table: one entry per supported datatype.
func cpuCreators(creator func(tensor.DataType) engine.Creator) map[string]engine.Creator {
	creators := make(map[string]engine.Creator)
	for _, dtype := range cpuBackend.DataTypes() {
		creators[compositeKey(cpu.Model, dtype.Identifier())] = creator(dtype)
	}
	return creators
}

var (
	linearGenerators    = newGeneratorTable(KindLinear, cpuCreators(cpuBackend.Linear))
	rectifierGenerators = newGeneratorTable(KindRectifier, cpuCreators(cpuBackend.Rectifier))
	tanhGenerators      = newGeneratorTable(KindTanh, cpuCreators(cpuBackend.Tanh))
)

func generatorsFor(kind Kind) *generatorTable {
	switch kind {
	case KindLinear:
		return linearGenerators
	case KindRectifier:
		return rectifierGenerators
	case KindTanh:
		return tanhGenerators
	}
	return nil
}

// SupportedKeys returns the composite keys kind can be constructed with in
// this process, sorted. Unknown kinds have none.
func SupportedKeys(kind Kind) []string {
	if t := generatorsFor(kind); t != nil {
		return t.keys()
	}
	return nil
}
