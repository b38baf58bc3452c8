// SPDX-License-Identifier: MIT

// Package boundary: functional configuration for matrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
package boundary

// DefaultRepresentation is used when no WithRepresentation option is given.
const DefaultRepresentation = BitTreePivotColumn

const panicRepresentationInvalid = "boundary: WithRepresentation: unknown representation"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	rep Representation
}

// WithRepresentation selects the column storage strategy.
// Panics on a value outside the declared Representation constants.
func WithRepresentation(r Representation) Option {
	if int(r) >= len(representationNames) {
		panic(panicRepresentationInvalid)
	}

	return func(o *Options) { o.rep = r }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{rep: DefaultRepresentation}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
