package grpc

import (
	"context"
	"errors"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/model"
	pb "github.com/ekuzmina/notekeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	user, err := s.users.Register(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "username taken")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: user.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, tokens, err := s.users.Login(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		UserId:       user.ID,
	}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.Refresh(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {

	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.notes.ListActive(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.ListNotesResponse{Notes: make([]*pb.Note, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, &pb.Note{
			Id:        n.ID,
			OwnerId:   n.OwnerID,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
			Deleted:   n.Deleted,
		})
	}
	return resp, nil

}

func (s *GRPCServer) UpsertNote(ctx context.Context, req *pb.UpsertNoteRequest) (*pb.UpsertNoteResponse, error) {

	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Note == nil || req.Note.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "note with id required")
	}

	note := &model.Note{
		ID:        req.Note.Id,
		Title:     req.Note.Title,
		Body:      req.Note.Body,
		CreatedAt: req.Note.CreatedAt,
		UpdatedAt: req.Note.UpdatedAt,
		Deleted:   req.Note.Deleted,
	}

	if err := s.notes.Upsert(ctx, ownerID, note); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UpsertNoteResponse{}, nil

}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *pb.DeleteNoteRequest) (*pb.DeleteNoteResponse, error) {

	ownerID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	if err := s.notes.MarkDeleted(ctx, ownerID, req.Id); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.DeleteNoteResponse{}, nil

}
