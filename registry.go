package serhex

import (
	"reflect"
	"sync"
)

// registryKey combines type and codec for processor cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	planCache   = make(map[reflect.Type]*typePlan)
	planCacheMu sync.RWMutex

	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// getOrBuildPlan returns the cached hex tag plan for T or builds it.
func getOrBuildPlan[T any]() (*typePlan, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	if cached, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	if cached, ok := planCache[typ]; ok {
		return cached, nil
	}

	plan, err := buildPlan[T]()
	if err != nil {
		return nil, err
	}

	planCache[typ] = plan
	return plan, nil
}

// Use returns a cached processor or builds a new one.
// The processor is cached by type and codec content type.
func Use[T any](codec WireCodec) (*Processor[T], error) {
	typ := reflect.TypeFor[T]()
	key := registryKey{typ: typ, contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor and plan caches.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)

	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	planCache = make(map[reflect.Type]*typePlan)
}
