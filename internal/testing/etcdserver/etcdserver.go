// Package etcdserver runs an in-process etcd KV endpoint for integration
// tests that talk to a store through the real etcd client.
package etcdserver

import (
	"net"
	"sync"
	"testing"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/tarantool/go-mvcc/server"
)

const dialTimeout = 5 * time.Second

// Server is a gRPC server exposing a backend on a loopback port.
type Server struct {
	grpc     *grpc.Server
	listener net.Listener
	wg       sync.WaitGroup
	once     sync.Once
}

// Start serves backend until the test ends.
func Start(tb testing.TB, backend server.Backend) *Server {
	tb.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("failed to listen: %v", err)
	}

	srv := &Server{
		grpc:     grpc.NewServer(),
		listener: listener,
		wg:       sync.WaitGroup{},
		once:     sync.Once{},
	}

	server.New(backend).Register(srv.grpc)

	srv.wg.Add(1)

	go func() {
		defer srv.wg.Done()

		_ = srv.grpc.Serve(listener)
	}()

	tb.Cleanup(srv.Stop)

	return srv
}

// Endpoint returns the address clients dial.
func (s *Server) Endpoint() string {
	return s.listener.Addr().String()
}

// Client returns an etcd client connected to the server, closed when the
// test ends.
func (s *Server) Client(tb testing.TB) *clientv3.Client {
	tb.Helper()

	cli, err := clientv3.New(clientv3.Config{ //nolint:exhaustruct
		Endpoints:   []string{s.Endpoint()},
		DialTimeout: dialTimeout,
		Logger:      zap.NewNop(),
	})
	if err != nil {
		tb.Fatalf("failed to create client: %v", err)
	}

	tb.Cleanup(func() {
		_ = cli.Close()
	})

	return cli
}

// Stop stops the server. It is safe to call more than once.
func (s *Server) Stop() {
	s.once.Do(func() {
		s.grpc.Stop()
		s.wg.Wait()
	})
}
