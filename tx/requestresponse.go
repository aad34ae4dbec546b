package tx

import "github.com/tarantool/go-mvcc/kv"

// RequestResponse represents the response for an individual operation of a batch.
type RequestResponse struct {
	// PrevKvs contains the previous state of the touched keys when requested.
	PrevKvs []kv.KeyValue
	// Deleted is the number of keys removed by a delete operation.
	Deleted int64
}
