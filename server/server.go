// Package server exposes a store through the etcd v3 KV gRPC service, so
// stock etcd clients can read, write and compact it.
package server

import (
	"context"

	pb "go.etcd.io/etcd/api/v3/etcdserverpb"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tarantool/go-mvcc/internal/options"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/tx"
)

// Backend is the store served by [KV].
type Backend interface {
	Range(ctx context.Context, req query.Request) (query.Result, error)
	Apply(ctx context.Context, ops ...operation.Operation) (tx.Response, error)
	Compact(ctx context.Context, rev int64, physical bool) error
	CurrentRevision() int64
}

type serverOptions struct {
	logger    *zap.Logger
	clusterID uint64
	memberID  uint64
}

func defaultServerOptions() serverOptions {
	return serverOptions{
		logger:    zap.NewNop(),
		clusterID: 0,
		memberID:  0,
	}
}

// WithLogger configures the logger of the service.
func WithLogger(logger *zap.Logger) options.OptionCallback[serverOptions] {
	return func(opts *serverOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMember sets the cluster and member identifiers reported in response headers.
func WithMember(clusterID, memberID uint64) options.OptionCallback[serverOptions] {
	return func(opts *serverOptions) {
		opts.clusterID = clusterID
		opts.memberID = memberID
	}
}

// KV implements etcdserverpb.KVServer on top of a [Backend].
// Conditional transactions are not supported and answer Unimplemented.
type KV struct {
	pb.UnimplementedKVServer

	backend Backend
	logger  *zap.Logger

	clusterID uint64
	memberID  uint64
}

var _ pb.KVServer = (*KV)(nil)

// New creates the service for backend.
func New(backend Backend, opts ...options.OptionCallback[serverOptions]) *KV {
	o := options.ApplyOptions(defaultServerOptions, opts)

	return &KV{
		UnimplementedKVServer: pb.UnimplementedKVServer{},
		backend:               backend,
		logger:                o.logger.Named("kv"),
		clusterID:             o.clusterID,
		memberID:              o.memberID,
	}
}

// Register registers the service on srv.
func (s *KV) Register(srv *grpc.Server) {
	pb.RegisterKVServer(srv, s)
}

func (s *KV) header(rev int64) *pb.ResponseHeader {
	return &pb.ResponseHeader{
		ClusterId: s.clusterID,
		MemberId:  s.memberID,
		Revision:  rev,
		RaftTerm:  0,
	}
}

// Range implements etcdserverpb.KVServer.
func (s *KV) Range(ctx context.Context, req *pb.RangeRequest) (*pb.RangeResponse, error) {
	res, err := s.backend.Range(ctx, rangeRequest(req))
	if err != nil {
		return nil, s.toGRPCError("range", err)
	}

	return &pb.RangeResponse{
		Header: s.header(res.Revision),
		Kvs:    keyValues(res.Items),
		More:   res.More,
		Count:  res.Count,
	}, nil
}

// Put implements etcdserverpb.KVServer.
func (s *KV) Put(ctx context.Context, req *pb.PutRequest) (*pb.PutResponse, error) {
	op, err := putOperation(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Apply(ctx, op)
	if err != nil {
		return nil, s.toGRPCError("put", err)
	}

	return putResponse(s.header(resp.Revision), resp.Results[0]), nil
}

// DeleteRange implements etcdserverpb.KVServer.
func (s *KV) DeleteRange(ctx context.Context, req *pb.DeleteRangeRequest) (*pb.DeleteRangeResponse, error) {
	resp, err := s.backend.Apply(ctx, deleteOperation(req))
	if err != nil {
		return nil, s.toGRPCError("delete range", err)
	}

	return deleteResponse(s.header(resp.Revision), resp.Results[0]), nil
}

// Txn implements etcdserverpb.KVServer. Only unconditional transactions of
// puts and deletes are supported; they are applied as one batch.
func (s *KV) Txn(ctx context.Context, req *pb.TxnRequest) (*pb.TxnResponse, error) {
	if len(req.Compare) > 0 || len(req.Failure) > 0 {
		return nil, status.Error(codes.Unimplemented, "conditional transactions are not supported")
	}

	ops := make([]operation.Operation, 0, len(req.Success))

	for _, reqOp := range req.Success {
		switch {
		case reqOp.GetRequestPut() != nil:
			op, err := putOperation(reqOp.GetRequestPut())
			if err != nil {
				return nil, err
			}

			ops = append(ops, op)
		case reqOp.GetRequestDeleteRange() != nil:
			ops = append(ops, deleteOperation(reqOp.GetRequestDeleteRange()))
		default:
			return nil, status.Error(codes.Unimplemented, "only put and delete are supported in transactions")
		}
	}

	resp, err := s.backend.Apply(ctx, ops...)
	if err != nil {
		return nil, s.toGRPCError("txn", err)
	}

	header := s.header(resp.Revision)
	responses := make([]*pb.ResponseOp, 0, len(resp.Results))

	for i, result := range resp.Results {
		if req.Success[i].GetRequestPut() != nil {
			responses = append(responses, &pb.ResponseOp{
				Response: &pb.ResponseOp_ResponsePut{ResponsePut: putResponse(header, result)},
			})

			continue
		}

		responses = append(responses, &pb.ResponseOp{
			Response: &pb.ResponseOp_ResponseDeleteRange{ResponseDeleteRange: deleteResponse(header, result)},
		})
	}

	return &pb.TxnResponse{Header: header, Succeeded: true, Responses: responses}, nil
}

// Compact implements etcdserverpb.KVServer.
func (s *KV) Compact(ctx context.Context, req *pb.CompactionRequest) (*pb.CompactionResponse, error) {
	err := s.backend.Compact(ctx, req.Revision, req.Physical)
	if err != nil {
		return nil, s.toGRPCError("compact", err)
	}

	return &pb.CompactionResponse{Header: s.header(s.backend.CurrentRevision())}, nil
}
