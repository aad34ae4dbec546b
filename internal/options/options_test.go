package options_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-mvcc/internal/options"
)

type storeConfig struct {
	pageSize  int
	retention int64
	interval  time.Duration
	name      string
}

func defaults() storeConfig {
	return storeConfig{pageSize: 256, retention: 0, interval: time.Minute, name: "default"}
}

func withPageSize(n int) options.OptionCallback[storeConfig] {
	return func(c *storeConfig) { c.pageSize = n }
}

func withRetention(n int64) options.OptionCallback[storeConfig] {
	return func(c *storeConfig) { c.retention = n }
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor options.OptionConstructor[storeConfig]
		callbacks   []options.OptionCallback[storeConfig]
		expected    storeConfig
	}{
		{
			name:        "nil constructor and no callbacks",
			constructor: nil,
			callbacks:   nil,
			expected:    storeConfig{}, //nolint:exhaustruct
		},
		{
			name:        "defaults only",
			constructor: defaults,
			callbacks:   []options.OptionCallback[storeConfig]{},
			expected:    defaults(),
		},
		{
			name:        "nil constructor, single callback",
			constructor: nil,
			callbacks:   []options.OptionCallback[storeConfig]{withPageSize(8)},
			expected:    storeConfig{pageSize: 8}, //nolint:exhaustruct
		},
		{
			name:        "callbacks override defaults",
			constructor: defaults,
			callbacks: []options.OptionCallback[storeConfig]{
				withPageSize(16),
				withRetention(100),
			},
			expected: storeConfig{pageSize: 16, retention: 100, interval: time.Minute, name: "default"},
		},
		{
			name:        "last callback wins",
			constructor: defaults,
			callbacks: []options.OptionCallback[storeConfig]{
				withRetention(1),
				withRetention(2),
			},
			expected: storeConfig{pageSize: 256, retention: 2, interval: time.Minute, name: "default"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.ApplyOptions(tt.constructor, tt.callbacks))
		})
	}
}

func TestApplyOptions_Order(t *testing.T) {
	t.Parallel()

	callbacks := []options.OptionCallback[int]{
		func(i *int) { *i += 3 },
		func(i *int) { *i *= 2 },
	}

	assert.Equal(t, 20, options.ApplyOptions(func() int { return 7 }, callbacks))
}

func TestApplyOptions_Pointer(t *testing.T) {
	t.Parallel()

	type data struct{ x int }

	var constructor options.OptionConstructor[*data]

	callbacks := []options.OptionCallback[*data]{
		func(d **data) { *d = &data{x: 42} },
	}

	assert.Equal(t, &data{x: 42}, options.ApplyOptions(constructor, callbacks))
}
