package handler

import (
	"time"

	"bookclub/internal/domain"
)

// ProfileDTO is the JSON representation of a profile.
type ProfileDTO struct {
	Username  string `json:"username"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

func toProfileDTO(p *domain.Profile) ProfileDTO {
	return ProfileDTO{
		Username:  p.Username,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// AuthorDTO is the JSON representation of an author.
type AuthorDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func toAuthorDTO(a *domain.Author) AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// BookDTO is the JSON representation of a book.
type BookDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"imageUrl"`
	AuthorID  string `json:"authorId"`
	CreatedAt string `json:"createdAt"`
}

func toBookDTO(b *domain.Book) BookDTO {
	return BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Summary:   b.Summary,
		ImageURL:  b.ImageURL,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	User    string `json:"user"`
	BookID  string `json:"bookId"`
	Created string `json:"created"`
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:      c.ID,
		Content: c.Content,
		User:    c.Username,
		BookID:  c.BookID,
		Created: c.Created.Format(time.RFC3339),
	}
}
