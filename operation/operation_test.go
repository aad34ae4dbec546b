package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-mvcc/operation"
)

func TestPut(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	value := []byte("test-value")
	op := operation.Put(key, value)

	assert.Equal(t, operation.TypePut, op.Type())
	assert.Equal(t, key, op.Key())
	assert.Equal(t, value, op.Value())
	assert.False(t, op.IsRange())
	assert.False(t, op.Options().PrevKV)
}

func TestPutWithPrevKV(t *testing.T) {
	t.Parallel()

	op := operation.Put([]byte("test-key"), []byte("test-value"), operation.WithPrevKV())

	assert.True(t, op.Options().PrevKV)
	assert.False(t, op.IsRange())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	key := []byte("test-key")
	op := operation.Delete(key)

	assert.Equal(t, operation.TypeDelete, op.Type())
	assert.Equal(t, key, op.Key())
	assert.Nil(t, op.Value())
	assert.False(t, op.IsRange())
}

func TestDeleteWithRangeEnd(t *testing.T) {
	t.Parallel()

	op := operation.Delete([]byte("a"), operation.WithRangeEnd([]byte("c")), operation.WithPrevKV())

	assert.Equal(t, operation.TypeDelete, op.Type())
	assert.True(t, op.IsRange())
	assert.Equal(t, []byte("c"), op.Options().RangeEnd)
	assert.True(t, op.Options().PrevKV)
}
