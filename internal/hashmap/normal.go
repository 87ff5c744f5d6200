package hashmap

import "sync"

// NormalMap wraps the builtin map type with a RWMutex in order to provide thread safety
type NormalMap[K comparable, V any] struct {
	mtx        sync.RWMutex
	underlying map[K]V
}

// NewNormal creates a new normal thread safe map
func NewNormal[K comparable, V any]() *NormalMap[K, V] {
	return &NormalMap[K, V]{
		underlying: make(map[K]V),
	}
}

// Size returns the amount of stored key-value pairs
func (obj *NormalMap[K, V]) Size() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.underlying)
}

// Lookup returns the value assigned to the given key and a boolean indicating if the value was set manually or is
// the type's zero value
func (obj *NormalMap[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	val, ok := obj.underlying[key]
	return val, ok
}

// Get returns the value assigned to the given key.
// May be the type's zero value if it was not set using Set before; use Lookup for this information.
func (obj *NormalMap[K, V]) Get(key K) V {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return obj.underlying[key]
}

// Set sets a key-value pair
func (obj *NormalMap[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying[key] = value
}

// Unset deletes the value assigned to given key
func (obj *NormalMap[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.underlying, key)
}

// Clear clears the whole map (essentially re-creating the underlying map)
func (obj *NormalMap[K, V]) Clear() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying = make(map[K]V)
}

// BootstrappedManipulation allows a thread safe direct manipulation of the underlying map by wrapping the given
// function in a lock of the underlying mutex
func (obj *NormalMap[K, V]) BootstrappedManipulation(action func(underlying map[K]V)) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	action(obj.underlying)
}
