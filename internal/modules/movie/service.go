package movie

import (
	"context"
	"strings"

	"github.com/mflix-space/core/internal/pkg/pagination"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct{ store Store }

func NewService(store Store) *Service { return &Service{store: store} }

func (s *Service) List(ctx context.Context, q pagination.Query) (*listResponse, error) {
	items, total, err := s.store.List(ctx, q.Skip(), int64(q.Limit))
	if err != nil {
		return nil, err
	}
	return &listResponse{
		Movies:      items,
		TotalPages:  q.TotalPages(total),
		CurrentPage: q.Page,
	}, nil
}

func (s *Service) Detail(ctx context.Context, id primitive.ObjectID) (*detailResponse, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.store.RecentComments(ctx, id, detailCommentLimit)
	if err != nil {
		return nil, err
	}
	return &detailResponse{Movie: m, Comments: comments}, nil
}

// CheckTitle answers whether a movie with exactly this title exists.
// A blank title never matches.
func (s *Service) CheckTitle(ctx context.Context, title string) (*checkResponse, error) {
	if strings.TrimSpace(title) == "" {
		return &checkResponse{Exists: false}, nil
	}
	id, ok, err := s.store.FindIDByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &checkResponse{Exists: false}, nil
	}
	return &checkResponse{Exists: true, ID: id.Hex()}, nil
}
