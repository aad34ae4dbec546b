// Package operation provides the mutations a store applies in one batch.
package operation

// Operation represents a single mutation of a batch.
type Operation struct {
	typ     Type
	key     []byte
	value   []byte
	options Options
}

// Options contains additional operation configuration.
type Options struct {
	// RangeEnd turns a delete into a range delete over [key, RangeEnd).
	// A single zero byte deletes every key greater than or equal to key.
	RangeEnd []byte
	// PrevKV asks for the previous state of the touched keys.
	PrevKV bool
}

// Option configures an operation.
type Option func(*Options)

// WithRangeEnd makes a delete remove all keys in [key, end).
func WithRangeEnd(end []byte) Option {
	return func(opts *Options) {
		opts.RangeEnd = end
	}
}

// WithPrevKV makes the operation report the previous state of the touched keys.
func WithPrevKV() Option {
	return func(opts *Options) {
		opts.PrevKV = true
	}
}

func newOperation(typ Type, key, value []byte, opts []Option) Operation {
	op := Operation{typ: typ, key: key, value: value, options: Options{RangeEnd: nil, PrevKV: false}}
	for _, opt := range opts {
		opt(&op.options)
	}

	return op
}

// Put creates an operation storing value under key.
func Put(key, value []byte, opts ...Option) Operation {
	return newOperation(TypePut, key, value, opts)
}

// Delete creates an operation removing key, or a key range with WithRangeEnd.
func Delete(key []byte, opts ...Option) Operation {
	return newOperation(TypeDelete, key, nil, opts)
}

// Type returns the operation type.
func (o Operation) Type() Type {
	return o.typ
}

// Key returns the target key.
func (o Operation) Key() []byte {
	return o.key
}

// Value returns the data for put operations, nil for deletes.
func (o Operation) Value() []byte {
	return o.value
}

// Options returns the operation configuration.
func (o Operation) Options() Options {
	return o.options
}

// IsRange reports whether the operation spans a key range.
func (o Operation) IsRange() bool {
	return len(o.options.RangeEnd) > 0
}
