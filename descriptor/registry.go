// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/golang/proto2/internal/errors"
)

// The process-wide registry is populated once at initialization time,
// before any codec call, then read concurrently without further locking
// cost beyond the RWMutex below. It plays a role similar to a
// protoregistry.GlobalFiles/GlobalTypes pair, collapsed into a single
// registry scoped to what the codec itself needs to resolve: named
// Schemas, extension fields, and type aliases.
var registryMu sync.RWMutex

var (
	schemas    = make(map[FullName]*Schema)
	extensions = make(map[FullName]map[Number]*Field)
	typeAliases = make(map[Name]*TypeAlias)
)

// RegisterSchema publishes s under its FullName, failing if that name is
// already registered.
func RegisterSchema(s *Schema) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := schemas[s.name]; dup {
		return errors.New("descriptor: schema %v already registered", s.name)
	}
	schemas[s.name] = s
	return nil
}

// LookupSchema returns the Schema previously registered under name.
func LookupSchema(name FullName) (*Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := schemas[name]
	return s, ok
}

// RegisterExtension publishes field as the descriptor for wire number
// field.Number() on the extendable message named host. DeclareExtension
// calls this after validating the number falls in one of host's ranges.
func RegisterExtension(host FullName, field *Field) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	byNumber, ok := extensions[host]
	if !ok {
		byNumber = make(map[Number]*Field)
		extensions[host] = byNumber
	}
	if _, dup := byNumber[field.number]; dup {
		return &DuplicateFieldNumberError{Message: Name(host), Number: field.number}
	}
	byNumber[field.number] = field
	return nil
}

// LookupExtension returns the Field registered for (host, num), used by the
// Extension Store (package proto) to resolve an encountered wire number on
// an extendable message back to a descriptor.
func LookupExtension(host FullName, num Number) (*Field, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	byNumber, ok := extensions[host]
	if !ok {
		return nil, false
	}
	f, ok := byNumber[num]
	return f, ok
}

// RegisterTypeAlias publishes alias under its Name, failing if that name is
// already registered. The built-in SymbolAlias is not auto-registered;
// callers that want it available under the "symbol" name call this
// themselves.
func RegisterTypeAlias(alias *TypeAlias) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := typeAliases[alias.Name]; dup {
		return errors.New("descriptor: type alias %v already registered", alias.Name)
	}
	typeAliases[alias.Name] = alias
	return nil
}

// LookupTypeAlias returns the TypeAlias registered under name.
func LookupTypeAlias(name Name) (*TypeAlias, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := typeAliases[name]
	return a, ok
}

// PreloadSchemas runs each loader concurrently and registers every Schema it
// returns, stopping at the first error.
func PreloadSchemas(ctx context.Context, loaders ...func(context.Context) (*Schema, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		load := load
		g.Go(func() error {
			s, err := load(ctx)
			if err != nil {
				return err
			}
			return RegisterSchema(s)
		})
	}
	return g.Wait()
}
