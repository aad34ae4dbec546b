package query_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/revision"
)

func rev(main int64) revision.Revision {
	return revision.Revision{Main: main, Sub: 0}
}

func keys(res query.Result) []string {
	out := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, string(item.Key))
	}

	return out
}

// a=1 at 1, b=2 at 2, a deleted at 3.
func abIndex() *index.Index {
	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1))
	ix.Put([]byte("b"), []byte("2"), rev(2))
	ix.Delete([]byte("a"), rev(3))

	return ix
}

func TestEvaluate_Snapshots(t *testing.T) {
	t.Parallel()

	ev := query.NewEvaluator(abIndex())
	req := query.Request{Key: []byte("a"), RangeEnd: []byte("c")} //nolint:exhaustruct

	res, err := ev.Evaluate(context.Background(), 2, req)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, kv.KeyValue{Key: []byte("a"), Value: []byte("1"), CreateRevision: 1, ModRevision: 1, Version: 1},
		res.Items[0])
	assert.Equal(t, kv.KeyValue{Key: []byte("b"), Value: []byte("2"), CreateRevision: 2, ModRevision: 2, Version: 1},
		res.Items[1])
	assert.Equal(t, int64(2), res.Count)
	assert.False(t, res.More)

	res, err = ev.Evaluate(context.Background(), 3, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys(res))
}

func TestEvaluate_RangeBoundaries(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i, key := range []string{"a", "ab", "b", "c"} {
		ix.Put([]byte(key), []byte(key), rev(int64(i+1)))
	}

	ev := query.NewEvaluator(ix)

	tests := []struct {
		name string
		req  query.Request
		want []string
	}{
		{"single key", query.Request{Key: []byte("a")}, []string{"a"}},                                  //nolint:exhaustruct
		{"single missing key", query.Request{Key: []byte("aa")}, []string{}},                           //nolint:exhaustruct
		{"empty range", query.Request{Key: []byte("b"), RangeEnd: []byte("b")}, []string{}},            //nolint:exhaustruct
		{"inverted range", query.Request{Key: []byte("c"), RangeEnd: []byte("a")}, []string{}},         //nolint:exhaustruct
		{"half open", query.Request{Key: []byte("a"), RangeEnd: []byte("b")}, []string{"a", "ab"}},     //nolint:exhaustruct
		{"from key", query.Request{Key: []byte("ab"), RangeEnd: query.AllKeys}, []string{"ab", "b", "c"}}, //nolint:exhaustruct
		{"all keys", query.Request{Key: query.AllKeys, RangeEnd: query.AllKeys}, []string{"a", "ab", "b", "c"}}, //nolint:exhaustruct
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			res, err := ev.Evaluate(context.Background(), 4, test.req)
			require.NoError(t, err)
			assert.Equal(t, test.want, keys(res))
			assert.Equal(t, int64(len(test.want)), res.Count)
		})
	}
}

func TestEvaluate_EmptyKey(t *testing.T) {
	t.Parallel()

	ev := query.NewEvaluator(abIndex())

	_, err := ev.Evaluate(context.Background(), 3, query.Request{RangeEnd: []byte("z")}) //nolint:exhaustruct
	require.ErrorIs(t, err, kv.ErrInvalidRange)
}

func TestEvaluate_CountOnly(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i := range 100 {
		ix.Put([]byte(fmt.Sprintf("k%03d", i)), []byte("v"), rev(int64(i+1)))
	}

	ev := query.NewEvaluator(ix, query.WithPageSize(7))

	res, err := ev.Evaluate(context.Background(), 100, query.Request{ //nolint:exhaustruct
		Key:       []byte("a"),
		RangeEnd:  []byte("z"),
		CountOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.Count)
	assert.Empty(t, res.Items)
}

func TestEvaluate_LimitCountLaw(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i := range 30 {
		ix.Put([]byte(fmt.Sprintf("k%02d", i%10)), []byte(fmt.Sprint(i%4)), rev(int64(i+1)))
	}

	ev := query.NewEvaluator(ix)

	for _, limit := range []int64{0, 1, 3, 10, 20} {
		for _, order := range []query.SortOrder{query.SortNone, query.SortAscend, query.SortDescend} {
			for _, target := range []query.SortTarget{query.SortByKey, query.SortByValue, query.SortByMod} {
				req := query.Request{ //nolint:exhaustruct
					Key:            []byte("k"),
					RangeEnd:       query.AllKeys,
					Limit:          limit,
					SortOrder:      order,
					SortTarget:     target,
					MinModRevision: option.Some[int64](15),
				}

				res, err := ev.Evaluate(context.Background(), 30, req)
				require.NoError(t, err)

				assert.Equal(t, int64(10), res.Count)

				if limit > 0 {
					assert.LessOrEqual(t, int64(len(res.Items)), limit)
				}

				assert.Equal(t, res.Count > int64(len(res.Items)), res.More)
			}
		}
	}
}

func TestEvaluate_Sort(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("z"), rev(3))
	ix.Put([]byte("b"), []byte("y"), rev(1))
	ix.Put([]byte("c"), []byte("y"), rev(2))
	ix.Put([]byte("b"), []byte("x"), rev(4))
	ix.Put([]byte("b"), []byte("y"), rev(5))

	ev := query.NewEvaluator(ix)

	tests := []struct {
		name   string
		order  query.SortOrder
		target query.SortTarget
		limit  int64
		want   []string
	}{
		{"none keeps key order", query.SortNone, query.SortByValue, 0, []string{"a", "b", "c"}},
		{"key descend", query.SortDescend, query.SortByKey, 0, []string{"c", "b", "a"}},
		{"value ascend ties by key", query.SortAscend, query.SortByValue, 0, []string{"b", "c", "a"}},
		{"value descend ties by key", query.SortDescend, query.SortByValue, 0, []string{"a", "b", "c"}},
		{"mod ascend", query.SortAscend, query.SortByMod, 0, []string{"c", "a", "b"}},
		{"create descend", query.SortDescend, query.SortByCreate, 0, []string{"a", "c", "b"}},
		{"version descend limited", query.SortDescend, query.SortByVersion, 1, []string{"b"}},
		{"key ascend limited", query.SortAscend, query.SortByKey, 2, []string{"a", "b"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			res, err := ev.Evaluate(context.Background(), 5, query.Request{ //nolint:exhaustruct
				Key:        []byte("a"),
				RangeEnd:   query.AllKeys,
				SortOrder:  test.order,
				SortTarget: test.target,
				Limit:      test.limit,
			})
			require.NoError(t, err)
			assert.Equal(t, test.want, keys(res))
			assert.Equal(t, int64(3), res.Count)
		})
	}
}

func TestEvaluate_Filters(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1))
	ix.Put([]byte("b"), []byte("1"), rev(2))
	ix.Put([]byte("a"), []byte("2"), rev(3))
	ix.Put([]byte("c"), []byte("1"), rev(4))

	ev := query.NewEvaluator(ix)
	base := query.Request{Key: []byte("a"), RangeEnd: query.AllKeys} //nolint:exhaustruct

	tests := []struct {
		name   string
		modify func(*query.Request)
		want   []string
	}{
		{"min mod", func(r *query.Request) { r.MinModRevision = option.Some[int64](3) }, []string{"a", "c"}},
		{"max mod", func(r *query.Request) { r.MaxModRevision = option.Some[int64](2) }, []string{"b"}},
		{"min create", func(r *query.Request) { r.MinCreateRevision = option.Some[int64](2) }, []string{"b", "c"}},
		{"max create", func(r *query.Request) { r.MaxCreateRevision = option.Some[int64](1) }, []string{"a"}},
		{"combined", func(r *query.Request) {
			r.MinModRevision = option.Some[int64](2)
			r.MaxCreateRevision = option.Some[int64](2)
		}, []string{"a", "b"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req := base
			test.modify(&req)

			res, err := ev.Evaluate(context.Background(), 4, req)
			require.NoError(t, err)
			assert.Equal(t, test.want, keys(res))
		})
	}
}

func TestEvaluate_KeysOnly(t *testing.T) {
	t.Parallel()

	ev := query.NewEvaluator(abIndex())

	res, err := ev.Evaluate(context.Background(), 2, query.Request{ //nolint:exhaustruct
		Key:      []byte("a"),
		RangeEnd: query.AllKeys,
		KeysOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	for _, item := range res.Items {
		assert.Nil(t, item.Value)
		assert.Equal(t, int64(1), item.Version)
	}
}

// cancellingReader cancels the request after a number of visited entries.
type cancellingReader struct {
	reader query.Reader
	after  int
	cancel context.CancelFunc
}

func (r cancellingReader) Walk(start, end []byte, at int64, walk index.WalkFunc) error {
	seen := 0

	return r.reader.Walk(start, end, at, func(key []byte, rec index.Record, visible bool) bool {
		seen++
		if seen == r.after {
			r.cancel()
		}

		return walk(key, rec, visible)
	})
}

func TestEvaluate_Cancelled(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i := range 50 {
		ix.Put([]byte(fmt.Sprintf("k%02d", i)), []byte("v"), rev(int64(i+1)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := query.NewEvaluator(cancellingReader{reader: ix, after: 5, cancel: cancel}, query.WithPageSize(4))

	_, err := ev.Evaluate(ctx, 50, query.Request{Key: []byte("k"), RangeEnd: query.AllKeys}) //nolint:exhaustruct
	require.ErrorIs(t, err, kv.ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)

	// Already cancelled requests fail before scanning.
	_, err = query.NewEvaluator(ix).Evaluate(ctx, 50, query.Request{Key: []byte("k")}) //nolint:exhaustruct
	require.ErrorIs(t, err, kv.ErrCancelled)
}

func TestEvaluate_CancelledOverDeletedKeys(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i := range 50 {
		ix.Put([]byte(fmt.Sprintf("k%02d", i)), []byte("v"), rev(int64(i+1)))
	}

	for i := range 50 {
		ix.Delete([]byte(fmt.Sprintf("k%02d", i)), rev(int64(i+51)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := query.NewEvaluator(cancellingReader{reader: ix, after: 5, cancel: cancel}, query.WithPageSize(4))

	_, err := ev.Evaluate(ctx, 100, query.Request{Key: []byte("k"), RangeEnd: query.AllKeys}) //nolint:exhaustruct
	require.ErrorIs(t, err, kv.ErrCancelled)

	res, err := query.NewEvaluator(ix, query.WithPageSize(4)).
		Evaluate(context.Background(), 100, query.Request{Key: []byte("k"), RangeEnd: query.AllKeys}) //nolint:exhaustruct
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.Count)
}

func TestEvaluate_Compacted(t *testing.T) {
	t.Parallel()

	ix := abIndex()
	ix.Compact(3, nil, 10)

	_, err := query.NewEvaluator(ix).Evaluate(context.Background(), 2, query.Request{Key: []byte("a")}) //nolint:exhaustruct
	require.ErrorIs(t, err, kv.ErrCompacted)
}
