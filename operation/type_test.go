package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-mvcc/operation"
)

func TestType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   operation.Type
		str   string
		valid bool
	}{
		{"put", operation.TypePut, "Put", true},
		{"delete", operation.TypeDelete, "Delete", true},
		{"zero", operation.Type(0), "Unknown", false},
		{"unknown", operation.Type(99), "Unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.str, tt.typ.String())
			assert.Equal(t, tt.valid, tt.typ.Valid())
		})
	}
}
