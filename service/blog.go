package service

import (
	"context"
	"errors"
	"time"

	"Atrium/dao"
	"Atrium/models"
	"Atrium/pkg/log"
	"Atrium/pkg/snowflake"
	"Atrium/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	CreatePost(ctx context.Context, authorID int64, req *types.BlogPostRequest) error
	GetPost(ctx context.Context, postID int64) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, postID int64, req *types.BlogPostRequest) error
	DeletePost(ctx context.Context, postID int64) error
	ListPosts(ctx context.Context) ([]*types.BlogPostView, error)
}

type BlogService struct {
	BlogPostDAO *dao.BlogPostDAO
}

func (s *BlogService) CreatePost(ctx context.Context, authorID int64, req *types.BlogPostRequest) error {
	now := time.Now()
	post := &models.BlogPost{
		ID:        snowflake.GenID(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  authorID,
		CreatedAt: &now,
	}
	if err := s.BlogPostDAO.Create(ctx, post); err != nil {
		log.L.Error("create post failed", zap.Int64("author_id", authorID), zap.Error(err))
		return err
	}
	return nil
}

func (s *BlogService) GetPost(ctx context.Context, postID int64) (*models.BlogPost, error) {
	post, err := s.BlogPostDAO.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *BlogService) UpdatePost(ctx context.Context, postID int64, req *types.BlogPostRequest) error {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return err
	}
	err := s.BlogPostDAO.UpdateById(ctx, postID, map[string]any{
		"title":   req.Title,
		"content": req.Content,
	})
	if err != nil {
		log.L.Error("update post failed", zap.Int64("post_id", postID), zap.Error(err))
	}
	return err
}

func (s *BlogService) DeletePost(ctx context.Context, postID int64) error {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return err
	}
	if err := s.BlogPostDAO.DeleteById(ctx, postID); err != nil {
		log.L.Error("delete post failed", zap.Int64("post_id", postID), zap.Error(err))
		return err
	}
	log.L.Info("post deleted", zap.Int64("post_id", postID))
	return nil
}

// ListPosts returns every post shaped for rendering. Rows with a NULL
// date get the current time as a display value; the row itself stays
// untouched.
func (s *BlogService) ListPosts(ctx context.Context) ([]*types.BlogPostView, error) {
	posts, err := s.BlogPostDAO.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*types.BlogPostView, 0, len(posts))
	for _, post := range posts {
		view := &types.BlogPostView{
			ID:       post.ID,
			Title:    post.Title,
			Content:  post.Content,
			AuthorID: post.AuthorID,
		}
		if post.CreatedAt != nil {
			view.CreatedAt = *post.CreatedAt
		} else {
			log.L.Warn("post has no date", zap.Int64("post_id", post.ID))
			view.CreatedAt = time.Now()
		}
		views = append(views, view)
	}
	return views, nil
}
