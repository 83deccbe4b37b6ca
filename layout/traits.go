// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "golang.org/x/exp/maps"

// TraitsKey identifies one kind of per-child metadata. The key supplies
// the value reported for children that never set it.
type TraitsKey interface {
	Default() any
}

// Traits is a type-keyed container of per-child metadata, letting a
// parent layout attach arbitrary values to each child without all
// layouts sharing one trait type. The zero value is empty.
//
// Traits has value semantics: With returns a copy, and mutating the
// copy never affects the original.
type Traits struct {
	values map[TraitsKey]any
}

// MakeTraits returns Traits holding a single key/value pair.
func MakeTraits(key TraitsKey, value any) Traits {
	return Traits{}.With(key, value)
}

// With returns a copy of t with value stored under key.
func (t Traits) With(key TraitsKey, value any) Traits {
	m := maps.Clone(t.values)
	if m == nil {
		m = make(map[TraitsKey]any, 1)
	}
	m[key] = value
	return Traits{values: m}
}

// Value returns the value stored under key, or the key's default if
// the key was never set.
func (t Traits) Value(key TraitsKey) any {
	if v, ok := t.values[key]; ok {
		return v
	}
	return key.Default()
}
