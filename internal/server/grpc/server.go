// Package grpc exposes the NoteKeeper service over gRPC: user registration
// and login, token refresh, reachability pings, and the owner-scoped notes
// collection the sync protocol runs against.
package grpc

import (
	"context"
	"net"

	"github.com/ekuzmina/notekeeper/internal/logging"
	pb "github.com/ekuzmina/notekeeper/internal/proto"
	"github.com/ekuzmina/notekeeper/internal/server/notes"
	"github.com/ekuzmina/notekeeper/internal/server/users"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedNoteKeeperServiceServer
	address   string
	users     *users.Service
	notes     *notes.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *users.Service, ns *notes.Service, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		notes:     ns,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterNoteKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
