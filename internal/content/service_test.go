package content

import (
	"context"
	defError "errors"
	"net/http"
	"sync"
	"testing"

	"helpcenter-backend/internal/audit"
	"helpcenter-backend/internal/errors"
	"helpcenter-backend/internal/notify"
	"helpcenter-backend/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory audit log so service tests run without a database
type memoryAuditLog struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (l *memoryAuditLog) Create(entry *audit.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.ID = uint64(len(l.entries) + 1)
	l.entries = append(l.entries, *entry)
	return nil
}

func (l *memoryAuditLog) List(page, pageSize int) ([]audit.Entry, int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]audit.Entry(nil), l.entries...), int64(len(l.entries)), nil
}

type serviceFixture struct {
	service  Service
	repo     *MemoryRepository
	auditLog *memoryAuditLog
	shutdown func()
}

func newServiceFixture(t *testing.T) *serviceFixture {
	repo := newTestRepository()
	auditLog := &memoryAuditLog{}
	pool := worker.NewWorkerPool(1)

	var once sync.Once
	shutdown := func() { once.Do(pool.Shutdown) }
	t.Cleanup(shutdown)

	return &serviceFixture{
		service:  NewService(repo, auditLog, notify.NewClient("", ""), nil, pool),
		repo:     repo,
		auditLog: auditLog,
		shutdown: shutdown,
	}
}

func apiStatus(t *testing.T, err error) int {
	var apiErr *errors.APIError
	require.True(t, defError.As(err, &apiErr))
	return apiErr.Status
}

func TestService_GetArticleBySlug_RendersBody(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	categoryID, err := f.service.CreateCategory(ctx, "Server Rules", 1)
	require.NoError(t, err)
	_, err = f.service.CreateArticle(ctx, NewArticle{
		Title:               "Surf Maps",
		Description:         "short",
		DetailedDescription: "# Hi\nHello **world**",
		Category:            categoryID,
		EditedBy:            1,
	})
	require.NoError(t, err)

	view, err := f.service.GetArticleBySlug(ctx, "surf-maps", false)
	require.NoError(t, err)
	assert.Equal(t, "Surf Maps", view.Card.Latest().Title)
	assert.Equal(t, "<h1>Hi</h1>\n<p>Hello <strong>world</strong></p>", view.Rendered)
}

func TestService_GetArticleBySlug_NotFound(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.GetArticleBySlug(context.Background(), "missing", false)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
}

func TestService_VisibilityRules(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	categoryID, _ := f.service.CreateCategory(ctx, "Server Rules", 1)
	staffID, err := f.service.CreateArticle(ctx, NewArticle{
		Title: "Staff Guide", Category: categoryID, EditedBy: 1,
	})
	require.NoError(t, err)
	archivedID, err := f.service.CreateArticle(ctx, NewArticle{
		Title: "Old Rules", Category: categoryID, EditedBy: 1,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.SetStaffOnly(ctx, staffID, true, 1))
	require.NoError(t, f.service.SetArchived(ctx, archivedID, true, 1))

	// staff-only reads as forbidden, archived masquerades as missing
	_, err = f.service.GetArticleByID(ctx, staffID, false)
	assert.Equal(t, http.StatusForbidden, apiStatus(t, err))
	_, err = f.service.GetArticleByID(ctx, archivedID, false)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))

	// staff see both
	_, err = f.service.GetArticleByID(ctx, staffID, true)
	assert.NoError(t, err)
	_, err = f.service.GetArticleByID(ctx, archivedID, true)
	assert.NoError(t, err)

	// category listing and search hide them from non-staff
	section, err := f.service.GetCategory(ctx, categoryID, false)
	require.NoError(t, err)
	assert.Empty(t, section.Cards)

	assert.Empty(t, f.service.SearchArticles(ctx, "guide", false))
	assert.Len(t, f.service.SearchArticles(ctx, "guide", true), 1)
}

func TestService_CreateArticle_Duplicate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	categoryID, _ := f.service.CreateCategory(ctx, "Server Rules", 1)
	_, err := f.service.CreateArticle(ctx, NewArticle{Title: "Surf Maps", Category: categoryID, EditedBy: 1})
	require.NoError(t, err)

	_, err = f.service.CreateArticle(ctx, NewArticle{Title: "surf maps", Category: categoryID, EditedBy: 1})
	assert.Equal(t, http.StatusConflict, apiStatus(t, err))
}

func TestService_CreateCategory_Duplicate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.CreateCategory(ctx, "Server Rules", 1)
	require.NoError(t, err)

	_, err = f.service.CreateCategory(ctx, "server rules", 1)
	assert.Equal(t, http.StatusConflict, apiStatus(t, err))
}

func TestService_EditArticle_NotFound(t *testing.T) {
	f := newServiceFixture(t)

	title := "x"
	err := f.service.EditArticle(context.Background(), 99, CardUpdate{Title: &title}, 1)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
}

func TestService_DiffArticleVersions(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	categoryID, _ := f.service.CreateCategory(ctx, "Server Rules", 1)
	id, _ := f.service.CreateArticle(ctx, NewArticle{
		Title:               "Surf Maps",
		DetailedDescription: "a\nb",
		Category:            categoryID,
		EditedBy:            1,
	})

	body := "a\nx"
	require.NoError(t, f.service.EditArticle(ctx, id, CardUpdate{DetailedDescription: &body}, 1))

	result, err := f.service.DiffArticleVersions(ctx, id, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.From)
	assert.Equal(t, 2, result.To)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2, result.Lines[0].Line)

	_, err = f.service.DiffArticleVersions(ctx, id, 1, 9)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))

	_, err = f.service.DiffArticleVersions(ctx, 99, 1, 2)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
}

func TestService_RecordsActivity(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	categoryID, err := f.service.CreateCategory(ctx, "Server Rules", 7)
	require.NoError(t, err)
	_, err = f.service.CreateArticle(ctx, NewArticle{Title: "Surf Maps", Category: categoryID, EditedBy: 7})
	require.NoError(t, err)

	// drain the background queue before inspecting the log
	f.shutdown()

	entries, total, err := f.service.ListActivity(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, audit.ActionCreateCategory, entries[0].Action)
	assert.Equal(t, uint64(7), entries[0].ActorID)
	assert.Equal(t, audit.ActionCreateArticle, entries[1].Action)
}
