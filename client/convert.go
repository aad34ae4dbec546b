package client

import (
	"errors"
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/tx"
)

var errUnsupportedOperationType = errors.New("unsupported operation type")

func sortOrder(order query.SortOrder) etcd.SortOrder {
	switch order {
	case query.SortAscend:
		return etcd.SortAscend
	case query.SortDescend:
		return etcd.SortDescend
	default:
		return etcd.SortNone
	}
}

func sortTarget(target query.SortTarget) etcd.SortTarget {
	switch target {
	case query.SortByVersion:
		return etcd.SortByVersion
	case query.SortByCreate:
		return etcd.SortByCreateRevision
	case query.SortByMod:
		return etcd.SortByModRevision
	case query.SortByValue:
		return etcd.SortByValue
	default:
		return etcd.SortByKey
	}
}

// rangeOptions converts a range request to etcd get options.
func rangeOptions(req query.Request) []etcd.OpOption {
	var opts []etcd.OpOption

	if len(req.RangeEnd) > 0 {
		opts = append(opts, etcd.WithRange(string(req.RangeEnd)))
	}

	if rev, ok := req.Revision.Get(); ok {
		opts = append(opts, etcd.WithRev(rev))
	}

	if req.Limit > 0 {
		opts = append(opts, etcd.WithLimit(req.Limit))
	}

	if req.SortOrder != query.SortNone {
		opts = append(opts, etcd.WithSort(sortTarget(req.SortTarget), sortOrder(req.SortOrder)))
	}

	if req.KeysOnly {
		opts = append(opts, etcd.WithKeysOnly())
	}

	if req.CountOnly {
		opts = append(opts, etcd.WithCountOnly())
	}

	if v, ok := req.MinModRevision.Get(); ok {
		opts = append(opts, etcd.WithMinModRev(v))
	}

	if v, ok := req.MaxModRevision.Get(); ok {
		opts = append(opts, etcd.WithMaxModRev(v))
	}

	if v, ok := req.MinCreateRevision.Get(); ok {
		opts = append(opts, etcd.WithMinCreateRev(v))
	}

	if v, ok := req.MaxCreateRevision.Get(); ok {
		opts = append(opts, etcd.WithMaxCreateRev(v))
	}

	return opts
}

// operationsToEtcdOps converts operations to etcd operations.
func operationsToEtcdOps(ops []operation.Operation) ([]etcd.Op, error) {
	etcdOps := make([]etcd.Op, 0, len(ops))
	for _, op := range ops {
		etcdOp, err := operationToEtcdOp(op)
		if err != nil {
			return nil, err
		}

		etcdOps = append(etcdOps, etcdOp)
	}

	return etcdOps, nil
}

// operationToEtcdOp converts an operation to an etcd operation.
func operationToEtcdOp(op operation.Operation) (etcd.Op, error) {
	key := string(op.Key())

	var opts []etcd.OpOption
	if op.Options().PrevKV {
		opts = append(opts, etcd.WithPrevKV())
	}

	switch op.Type() {
	case operation.TypePut:
		return etcd.OpPut(key, string(op.Value()), opts...), nil
	case operation.TypeDelete:
		if op.IsRange() {
			opts = append(opts, etcd.WithRange(string(op.Options().RangeEnd)))
		}

		return etcd.OpDelete(key, opts...), nil
	default:
		return etcd.Op{}, fmt.Errorf("%w: %v", errUnsupportedOperationType, op.Type())
	}
}

// etcdResponseToTxResponse converts an etcd transaction response to tx.Response.
func etcdResponseToTxResponse(resp *etcd.TxnResponse) tx.Response {
	results := make([]tx.RequestResponse, 0, len(resp.Responses))

	for _, etcdResp := range resp.Responses {
		var result tx.RequestResponse

		switch {
		case etcdResp.GetResponsePut() != nil:
			if prev := etcdResp.GetResponsePut().PrevKv; prev != nil {
				result.PrevKvs = []kv.KeyValue{{
					Key:            prev.Key,
					Value:          prev.Value,
					CreateRevision: prev.CreateRevision,
					ModRevision:    prev.ModRevision,
					Version:        prev.Version,
				}}
			}
		case etcdResp.GetResponseDeleteRange() != nil:
			deleteResp := etcdResp.GetResponseDeleteRange()
			result.Deleted = deleteResp.Deleted

			for _, prev := range deleteResp.PrevKvs {
				result.PrevKvs = append(result.PrevKvs, kv.KeyValue{
					Key:            prev.Key,
					Value:          prev.Value,
					CreateRevision: prev.CreateRevision,
					ModRevision:    prev.ModRevision,
					Version:        prev.Version,
				})
			}
		}

		results = append(results, result)
	}

	return tx.Response{
		Revision: resp.Header.Revision,
		Results:  results,
	}
}
