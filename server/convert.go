package server

import (
	pb "go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.etcd.io/etcd/api/v3/mvccpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/tx"
)

// positive maps etcd's "zero or negative means unset" fields.
func positive(v int64) option.Generic[int64] {
	if v > 0 {
		return option.Some(v)
	}

	return option.None[int64]()
}

func sortOrder(order pb.RangeRequest_SortOrder) query.SortOrder {
	switch order {
	case pb.RangeRequest_ASCEND:
		return query.SortAscend
	case pb.RangeRequest_DESCEND:
		return query.SortDescend
	default:
		return query.SortNone
	}
}

func sortTarget(target pb.RangeRequest_SortTarget) query.SortTarget {
	switch target {
	case pb.RangeRequest_VERSION:
		return query.SortByVersion
	case pb.RangeRequest_CREATE:
		return query.SortByCreate
	case pb.RangeRequest_MOD:
		return query.SortByMod
	case pb.RangeRequest_VALUE:
		return query.SortByValue
	default:
		return query.SortByKey
	}
}

func rangeRequest(req *pb.RangeRequest) query.Request {
	order := sortOrder(req.SortOrder)
	target := sortTarget(req.SortTarget)

	// etcd orders by any target other than the key ascending when no order
	// is given.
	if order == query.SortNone && target != query.SortByKey {
		order = query.SortAscend
	}

	limit := req.Limit
	if limit < 0 {
		limit = 0
	}

	return query.Request{
		Key:               req.Key,
		RangeEnd:          req.RangeEnd,
		Revision:          positive(req.Revision),
		Limit:             limit,
		SortOrder:         order,
		SortTarget:        target,
		KeysOnly:          req.KeysOnly,
		CountOnly:         req.CountOnly,
		MinModRevision:    positive(req.MinModRevision),
		MaxModRevision:    positive(req.MaxModRevision),
		MinCreateRevision: positive(req.MinCreateRevision),
		MaxCreateRevision: positive(req.MaxCreateRevision),
	}
}

func keyValue(item kv.KeyValue) *mvccpb.KeyValue {
	return &mvccpb.KeyValue{
		Key:            item.Key,
		CreateRevision: item.CreateRevision,
		ModRevision:    item.ModRevision,
		Version:        item.Version,
		Value:          item.Value,
		Lease:          0,
	}
}

func keyValues(items []kv.KeyValue) []*mvccpb.KeyValue {
	if len(items) == 0 {
		return nil
	}

	out := make([]*mvccpb.KeyValue, 0, len(items))
	for _, item := range items {
		out = append(out, keyValue(item))
	}

	return out
}

// unsupportedPut rejects put features that need leases.
func unsupportedPut(req *pb.PutRequest) error {
	switch {
	case req.Lease != 0:
		return status.Error(codes.Unimplemented, "leases are not supported")
	case req.IgnoreLease:
		return status.Error(codes.Unimplemented, "ignore_lease is not supported")
	case req.IgnoreValue:
		return status.Error(codes.Unimplemented, "ignore_value is not supported")
	}

	return nil
}

func putOperation(req *pb.PutRequest) (operation.Operation, error) {
	if err := unsupportedPut(req); err != nil {
		return operation.Operation{}, err
	}

	var opts []operation.Option
	if req.PrevKv {
		opts = append(opts, operation.WithPrevKV())
	}

	return operation.Put(req.Key, req.Value, opts...), nil
}

func deleteOperation(req *pb.DeleteRangeRequest) operation.Operation {
	var opts []operation.Option
	if len(req.RangeEnd) > 0 {
		opts = append(opts, operation.WithRangeEnd(req.RangeEnd))
	}

	if req.PrevKv {
		opts = append(opts, operation.WithPrevKV())
	}

	return operation.Delete(req.Key, opts...)
}

func putResponse(header *pb.ResponseHeader, result tx.RequestResponse) *pb.PutResponse {
	out := &pb.PutResponse{Header: header, PrevKv: nil}
	if len(result.PrevKvs) > 0 {
		out.PrevKv = keyValue(result.PrevKvs[0])
	}

	return out
}

func deleteResponse(header *pb.ResponseHeader, result tx.RequestResponse) *pb.DeleteRangeResponse {
	return &pb.DeleteRangeResponse{
		Header:  header,
		Deleted: result.Deleted,
		PrevKvs: keyValues(result.PrevKvs),
	}
}
