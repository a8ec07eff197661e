package comment

import (
	"context"
	"strings"
	"time"

	"github.com/mflix-space/core/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Create(ctx context.Context, dto *CreateCommentDTO) (*models.CommentModel, error) {
	if blank(dto.MovieID) || blank(dto.Name) || blank(dto.Text) {
		return nil, errMissingFields
	}
	movieID, err := models.ParseObjectID(dto.MovieID)
	if err != nil {
		return nil, err
	}

	c := &models.CommentModel{
		MovieID: movieID,
		Name:    dto.Name,
		Email:   dto.Email,
		Text:    dto.Text,
		Date:    s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateText(ctx context.Context, id primitive.ObjectID, dto *UpdateCommentDTO) error {
	if blank(dto.Text) {
		return errMissingText
	}
	ok, err := s.store.UpdateText(ctx, id, dto.Text, s.now().UTC().Truncate(time.Millisecond))
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}

// blank is only a presence check; stored values keep their whitespace.
func blank(s string) bool { return strings.TrimSpace(s) == "" }
