package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Atrium/middleware"
	pkgctx "Atrium/pkg/context"
	"Atrium/pkg/log"
	"Atrium/service"
	"Atrium/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Blog struct {
	BlogService service.IBlogService
	Csrf        middleware.TokenValidator
}

func (h *Blog) RegisterRouter(r gin.IRouter) {
	r.GET("/view_posts", pkgctx.Wrap(h.List))

	admin := r.Group("", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.GET("/post", pkgctx.Wrap(h.CreateForm))
	admin.POST("/post", pkgctx.Wrap(h.Create))
	admin.GET("/edit_post/:id", pkgctx.Wrap(h.EditForm))
	admin.POST("/edit_post/:id", pkgctx.Wrap(h.Edit))

	r.DELETE("/delete_post/:id",
		middleware.RequireAuth(),
		middleware.RequireAdmin(),
		middleware.CSRF(h.Csrf),
		pkgctx.Wrap(h.Delete),
	)
}

func (h *Blog) List(c *gin.Context) error {
	posts, err := h.BlogService.ListPosts(c.Request.Context())
	category, message := flashFromQuery(c)
	if err != nil {
		category, message = "error", "Could not load posts."
	}
	c.HTML(http.StatusOK, "view_blogposts.html", gin.H{
		"user":    pkgctx.Actor(c),
		"posts":   posts,
		"flash":   category,
		"message": message,
	})
	return nil
}

func (h *Blog) CreateForm(c *gin.Context) error {
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"user": pkgctx.Actor(c),
	})
	return nil
}

func (h *Blog) Create(c *gin.Context) error {
	actor := pkgctx.Actor(c)

	var req types.BlogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"user":    actor,
			"flash":   "error",
			"message": "Title and content are required.",
			"title":   c.PostForm("title"),
			"content": c.PostForm("content"),
		})
		return nil
	}

	if err := h.BlogService.CreatePost(c.Request.Context(), actor.ID, &req); err != nil {
		c.HTML(http.StatusOK, "create_post.html", gin.H{
			"user":    actor,
			"flash":   "error",
			"message": "Could not save the post. Please try again.",
			"title":   req.Title,
			"content": req.Content,
		})
		return nil
	}

	redirectWithFlash(c, "/view_posts", "success", "Blog post created successfully!")
	return nil
}

func (h *Blog) EditForm(c *gin.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/view_posts", "error", "Post not found.")
		return nil
	}

	post, err := h.BlogService.GetPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/view_posts", "error", "Post not found.")
			return nil
		}
		log.L.Error("load post failed", zap.Int64("post_id", postID), zap.Error(err))
		redirectWithFlash(c, "/view_posts", "error", "Could not load the post.")
		return nil
	}

	c.HTML(http.StatusOK, "edit_post.html", gin.H{
		"user":    pkgctx.Actor(c),
		"post":    post,
		"title":   post.Title,
		"content": post.Content,
	})
	return nil
}

func (h *Blog) Edit(c *gin.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/view_posts", "error", "Post not found.")
		return nil
	}

	var req types.BlogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "edit_post.html", gin.H{
			"user":    pkgctx.Actor(c),
			"flash":   "error",
			"message": "Title and content are required.",
			"title":   c.PostForm("title"),
			"content": c.PostForm("content"),
		})
		return nil
	}

	if err := h.BlogService.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			redirectWithFlash(c, "/view_posts", "error", "Post not found.")
			return nil
		}
		log.L.Error("update post failed", zap.Int64("post_id", postID), zap.Error(err))
		redirectWithFlash(c, "/view_posts", "error", "Could not save the post. Please try again.")
		return nil
	}

	redirectWithFlash(c, "/view_posts", "success", "Post updated successfully!")
	return nil
}

func (h *Blog) Delete(c *gin.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, types.ActionResult{Success: false, Message: "Post not found"})
		return nil
	}

	err = h.BlogService.DeletePost(c.Request.Context(), postID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, types.ActionResult{Success: true, Message: "Post deleted successfully"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ActionResult{Success: false, Message: "Post not found"})
	default:
		c.JSON(http.StatusInternalServerError, types.ActionResult{Success: false, Message: "An error occurred while deleting the post"})
	}
	return nil
}
