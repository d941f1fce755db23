package remote

import (
	"context"
	"fmt"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/model"
	pb "github.com/ekuzmina/notekeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.NoteKeeperServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// retry the original call with the fresh access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.init()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) init() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewNoteKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username string, password string) error {

	req := &pb.RegisterUserRequest{Username: username, Password: password}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Login(ctx context.Context, username string, password string) (string, error) {

	req := &pb.LoginRequest{Username: username, Password: password}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return resp.UserId, nil

}

// Logout drops the cached token pair so later calls go out unauthenticated.
func (s *GRPCClient) Logout() {
	s.accessToken = ""
	s.refreshToken = ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

// FetchActive returns every live note of the authenticated owner. The wire
// format never carries the local synced flag, so records come back marked
// synced and not deleted.
func (s *GRPCClient) FetchActive(ctx context.Context) ([]*model.Note, error) {

	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	notes := make([]*model.Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, &model.Note{
			ID:        n.Id,
			OwnerID:   n.OwnerId,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
			Synced:    true,
			Deleted:   false,
		})
	}

	return notes, nil
}

func (s *GRPCClient) UpsertOne(ctx context.Context, note *model.Note) error {

	req := &pb.UpsertNoteRequest{Note: &pb.Note{
		Id:        note.ID,
		OwnerId:   note.OwnerID,
		Title:     note.Title,
		Body:      note.Body,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		Deleted:   note.Deleted,
	}}

	_, err := s.client.UpsertNote(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) MarkDeleted(ctx context.Context, id string) error {

	req := &pb.DeleteNoteRequest{Id: id}

	_, err := s.client.DeleteNote(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
