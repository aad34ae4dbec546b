// Package options implements functional options shared by the public
// constructors of the module.
package options

// OptionConstructor returns the default value options are applied to.
type OptionConstructor[T any] func() T

// OptionCallback mutates options in place.
type OptionCallback[T any] func(*T)

// ApplyOptions builds the defaults with constructor, when set, and applies
// cbs to them in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
