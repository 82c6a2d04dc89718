/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/dbbench/config"
	"github.com/suparena/dbbench/target"
)

// Factory builds a connected target from its plan entry and credentials.
type Factory func(cfg config.TargetConfig, creds config.Credentials) (target.Target, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// RegisterDriver registers a factory under a driver name. Driver packages
// call this from init(); importing a driver package for side effects makes
// it available to plan files. Panics on duplicate registration to catch
// accidental overrides.
func RegisterDriver(name string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("driver registry: driver %q already registered", name))
	}
	factories[name] = fn
}

// Open resolves the driver named in the plan entry and builds the target.
func Open(cfg config.TargetConfig, creds config.Credentials) (target.Target, error) {
	mu.RLock()
	fn, ok := factories[cfg.Driver]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("driver registry: no driver registered for %q (known: %v)", cfg.Driver, Drivers())
	}
	return fn(cfg, creds)
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
