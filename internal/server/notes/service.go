package notes

import (
	"context"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/model"
)

// Service scopes every repository call to the authenticated owner. The
// owner id always comes from the verified token, never from the request
// payload.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive(ctx context.Context, ownerID string) ([]*model.Note, error) {
	notes, err := s.repo.ListActive(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return notes, nil
}

func (s *Service) Upsert(ctx context.Context, ownerID string, note *model.Note) error {
	note.OwnerID = ownerID
	if err := s.repo.Upsert(ctx, note); err != nil {
		return common.ErrorInternal
	}
	return nil
}

func (s *Service) MarkDeleted(ctx context.Context, ownerID string, id string) error {
	if err := s.repo.MarkDeleted(ctx, id, ownerID); err != nil {
		return common.ErrorInternal
	}
	return nil
}
