// Package client reads and writes a remote store through the etcd v3 client,
// speaking the same request and response types as the local store.
package client

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/tx"
)

// KV defines the part of the etcd client the store client needs.
// *etcd.Client satisfies it.
type KV interface {
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	Txn(ctx context.Context) etcd.Txn
	Compact(ctx context.Context, rev int64, opts ...etcd.CompactOption) (*etcd.CompactResponse, error)
}

// Client is a remote store.
type Client struct {
	kv KV
}

var _ KV = (*etcd.Client)(nil)

// New creates a client on top of an etcd client.
func New(kv KV) *Client {
	return &Client{kv: kv}
}

// Range serves a range read on the remote store.
func (c *Client) Range(ctx context.Context, req query.Request) (query.Result, error) {
	if err := req.Validate(); err != nil {
		return query.Result{}, err
	}

	resp, err := c.kv.Get(ctx, string(req.Key), rangeOptions(req)...)
	if err != nil {
		return query.Result{}, fromEtcdError("range", err)
	}

	items := make([]kv.KeyValue, 0, len(resp.Kvs))
	for _, item := range resp.Kvs {
		items = append(items, kv.KeyValue{
			Key:            item.Key,
			Value:          item.Value,
			CreateRevision: item.CreateRevision,
			ModRevision:    item.ModRevision,
			Version:        item.Version,
		})
	}

	return query.Result{
		Items:    items,
		Count:    resp.Count,
		More:     resp.More,
		Revision: resp.Header.Revision,
	}, nil
}

// Apply commits ops on the remote store as one batch.
func (c *Client) Apply(ctx context.Context, ops ...operation.Operation) (tx.Response, error) {
	etcdOps, err := operationsToEtcdOps(ops)
	if err != nil {
		return tx.Response{}, err
	}

	resp, err := c.kv.Txn(ctx).Then(etcdOps...).Commit()
	if err != nil {
		return tx.Response{}, fromEtcdError("apply", err)
	}

	return etcdResponseToTxResponse(resp), nil
}

// Compact raises the compaction floor of the remote store to rev, waiting
// for the physical pass if physical is set.
func (c *Client) Compact(ctx context.Context, rev int64, physical bool) error {
	var opts []etcd.CompactOption
	if physical {
		opts = append(opts, etcd.WithCompactPhysical())
	}

	_, err := c.kv.Compact(ctx, rev, opts...)
	if err != nil {
		return fromEtcdError("compact", err)
	}

	return nil
}

// fromEtcdError maps the errors returned by the etcd client to the kv ones.
func fromEtcdError(method string, err error) error {
	switch {
	case errors.Is(err, rpctypes.ErrCompacted):
		return fmt.Errorf("%s failed: %w: %w", method, kv.ErrCompacted, err)
	case errors.Is(err, rpctypes.ErrFutureRev):
		return fmt.Errorf("%s failed: %w: %w", method, kv.ErrFutureRevision, err)
	case errors.Is(err, rpctypes.ErrEmptyKey):
		return fmt.Errorf("%s failed: %w: %w", method, kv.ErrInvalidRange, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s failed: %w", method, kv.NewCancelledError(err))
	default:
		return fmt.Errorf("%s failed: %w", method, err)
	}
}
