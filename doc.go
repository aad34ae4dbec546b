// Package mvcc provides a single-node multi-version key-value store that
// serves etcd-compatible range reads.
//
// Every committed mutation batch is assigned a new main revision; every
// mutation inside it a sub revision. Reads are served from a consistent
// snapshot at any retained revision, and a background compactor bounds the
// retained history without disturbing reads in flight.
//
// See the [github.com/tarantool/go-mvcc/server] package for the gRPC adapter
// implementing the etcd KV service on top of a [Store].
package mvcc
