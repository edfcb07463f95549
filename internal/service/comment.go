package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookclub/internal/domain"
)

// CommentService attaches profile-holders' comments to books.
type CommentService struct {
	comments domain.CommentRepository
	profiles domain.ProfileRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, profiles domain.ProfileRepository) *CommentService {
	return &CommentService{comments: comments, profiles: profiles}
}

// PostComment records a comment by the caller's profile on the given
// book. A caller without a profile cannot comment. The book is
// referenced as-is; its existence is not verified.
func (s *CommentService) PostComment(ctx context.Context, ident *domain.Identity, bookID, content string) (*domain.Comment, error) {
	profile, err := s.profiles.GetByUserID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoProfile
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	comment := &domain.Comment{
		ID:       uuid.NewString(),
		Content:  content,
		Username: profile.Username,
		BookID:   bookID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
