// Package options implements generic functional options shared by the engines.
package options

// OptionConstructor returns the default value of an options struct.
type OptionConstructor[T any] func() T

// OptionCallback mutates an options struct.
type OptionCallback[T any] func(*T)

// ApplyOptions builds options from the constructor defaults and applies callbacks in order.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
