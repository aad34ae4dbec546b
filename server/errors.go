package server

import (
	"context"
	"errors"

	"go.etcd.io/etcd/api/v3/v3rpc/rpctypes"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tarantool/go-mvcc/kv"
)

// toGRPCError maps store errors to the status errors etcd clients expect.
func (s *KV) toGRPCError(method string, err error) error {
	var rangeErr kv.InvalidRangeError

	switch {
	case errors.Is(err, kv.ErrCompacted):
		s.logger.Debug("request rejected", zap.String("method", method), zap.Error(err))
		return rpctypes.ErrGRPCCompacted
	case errors.Is(err, kv.ErrFutureRevision):
		s.logger.Debug("request rejected", zap.String("method", method), zap.Error(err))
		return rpctypes.ErrGRPCFutureRev
	case errors.As(err, &rangeErr) && len(rangeErr.Key) == 0:
		s.logger.Debug("request rejected", zap.String("method", method), zap.Error(err))
		return rpctypes.ErrGRPCEmptyKey
	case errors.Is(err, kv.ErrInvalidRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, kv.ErrCancelled), errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}

	s.logger.Error("request failed", zap.String("method", method), zap.Error(err))

	return status.Error(codes.Internal, err.Error())
}
