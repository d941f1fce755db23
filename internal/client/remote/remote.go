package remote

import (
	"context"

	"github.com/ekuzmina/notekeeper/internal/model"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password string) error
	Login(ctx context.Context, username string, password string) (string, error)
	Logout()
	Ping(ctx context.Context) error
	FetchActive(ctx context.Context) ([]*model.Note, error)
	UpsertOne(ctx context.Context, note *model.Note) error
	MarkDeleted(ctx context.Context, id string) error
}
