package handler

import (
	"context"

	"Atrium/models"
	pkgctx "Atrium/pkg/context"
	"Atrium/types"

	"github.com/gin-gonic/gin"
)

// newTestRouter builds an engine with the real templates so page handlers
// can render, and optionally seeds the request actor the way OptionalAuth
// would have.
func newTestRouter(actor *types.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	if actor != nil {
		r.Use(func(c *gin.Context) {
			pkgctx.SetActor(c, actor)
			c.Next()
		})
	}
	return r
}

type fakeNoteService struct {
	addErr    error
	deleteErr error
	notes     []*models.Note

	addedUserID  int64
	addedText    string
	deletedNote  int64
	deleteCalled bool
}

func (f *fakeNoteService) AddNote(_ context.Context, userID int64, text string) error {
	f.addedUserID = userID
	f.addedText = text
	return f.addErr
}

func (f *fakeNoteService) DeleteNote(_ context.Context, _, noteID int64) error {
	f.deleteCalled = true
	f.deletedNote = noteID
	return f.deleteErr
}

func (f *fakeNoteService) ListForUser(_ context.Context, _ int64) ([]*models.Note, error) {
	return f.notes, nil
}

type fakeVisitorService struct {
	count    int64
	recorded int
}

func (f *fakeVisitorService) Record(_ context.Context, _, _ string) { f.recorded++ }

func (f *fakeVisitorService) Count(_ context.Context) (int64, error) { return f.count, nil }

type fakeCsrfStore struct {
	token string
}

func (f *fakeCsrfStore) Issue(_ context.Context, _ string) (string, error) { return f.token, nil }
func (f *fakeCsrfStore) Token(_ context.Context, _ string) (string, error) { return f.token, nil }
func (f *fakeCsrfStore) Revoke(_ context.Context, _ string) error { return nil }

type fakeTokenValidator struct {
	err error
}

func (f *fakeTokenValidator) Validate(_ context.Context, _, _ string) error { return f.err }

type fakeContactService struct {
	emailed bool
	called  bool
	got     *types.ContactRequest
}

func (f *fakeContactService) Submit(_ context.Context, req *types.ContactRequest) bool {
	f.called = true
	f.got = req
	return f.emailed
}

func (f *fakeContactService) ListMessages(_ context.Context) ([]*models.ContactMessage, error) {
	return nil, nil
}

type fakeBlogService struct {
	posts     []*types.BlogPostView
	post      *models.BlogPost
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error

	deletedPost  int64
	deleteCalled bool
}

func (f *fakeBlogService) CreatePost(_ context.Context, _ int64, _ *types.BlogPostRequest) error {
	return f.createErr
}

func (f *fakeBlogService) GetPost(_ context.Context, _ int64) (*models.BlogPost, error) {
	return f.post, f.getErr
}

func (f *fakeBlogService) UpdatePost(_ context.Context, _ int64, _ *types.BlogPostRequest) error {
	return f.updateErr
}

func (f *fakeBlogService) DeletePost(_ context.Context, postID int64) error {
	f.deleteCalled = true
	f.deletedPost = postID
	return f.deleteErr
}

func (f *fakeBlogService) ListPosts(_ context.Context) ([]*types.BlogPostView, error) {
	return f.posts, f.listErr
}
