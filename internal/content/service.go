package content

import (
	"context"
	"fmt"
	"time"

	"helpcenter-backend/internal/audit"
	"helpcenter-backend/internal/diff"
	"helpcenter-backend/internal/errors"
	"helpcenter-backend/internal/markup"
	"helpcenter-backend/internal/notify"
	"helpcenter-backend/internal/worker"
	"helpcenter-backend/redis"
)

// ArticleView is a card together with its latest body rendered to HTML.
type ArticleView struct {
	Card     Card   `json:"card"`
	Rendered string `json:"rendered"`
}

// VersionDiff is the response shape of the history comparison view.
type VersionDiff struct {
	From  int             `json:"from"`
	To    int             `json:"to"`
	Lines []diff.LineDiff `json:"lines"`
}

// Service is the layer the HTTP handlers talk to. It translates the
// repository's Outcome values into API errors, renders article bodies,
// and fans out audit/webhook work to the background pool.
type Service interface {
	ListCategories(ctx context.Context) []CategorySummary
	GetCategory(ctx context.Context, id int, staffViewer bool) (*Section, error)
	CreateCategory(ctx context.Context, title string, actorID uint64) (int, error)
	RenameCategory(ctx context.Context, id int, title string, actorID uint64) error
	CategoryHistory(ctx context.Context, id int) ([]SectionVersion, error)

	GetArticleBySlug(ctx context.Context, slug string, staffViewer bool) (*ArticleView, error)
	GetArticleByID(ctx context.Context, id int, staffViewer bool) (*ArticleView, error)
	CreateArticle(ctx context.Context, input NewArticle) (int, error)
	EditArticle(ctx context.Context, id int, fields CardUpdate, actorID uint64) error
	SetArchived(ctx context.Context, id int, archived bool, actorID uint64) error
	SetStaffOnly(ctx context.Context, id int, staffOnly bool, actorID uint64) error
	SearchArticles(ctx context.Context, query string, staffViewer bool) []SearchResult
	ArticleHistory(ctx context.Context, id int) ([]CardVersion, error)
	DiffArticleVersions(ctx context.Context, id, from, to int) (*VersionDiff, error)

	ListActivity(ctx context.Context, page, pageSize int) ([]audit.Entry, int64, error)
}

type DefaultService struct {
	repository Repository
	auditLog   audit.Repository
	notifier   *notify.Client
	cache      *redis.Cache
	pool       *worker.WorkerPool
}

func NewService(
	repository Repository,
	auditLog audit.Repository,
	notifier *notify.Client,
	cache *redis.Cache,
	pool *worker.WorkerPool,
) Service {
	return &DefaultService{
		repository: repository,
		auditLog:   auditLog,
		notifier:   notifier,
		cache:      cache,
		pool:       pool,
	}
}

func (s *DefaultService) ListCategories(ctx context.Context) []CategorySummary {
	return s.repository.ListCategories()
}

func (s *DefaultService) GetCategory(ctx context.Context, id int, staffViewer bool) (*Section, error) {
	section := s.repository.FindCategoryByID(id)
	if section == nil {
		return nil, errors.NotFound("Category not found", nil)
	}
	if !staffViewer {
		visible := make([]*Card, 0, len(section.Cards))
		for _, card := range section.Cards {
			if card.Archived || card.StaffOnly {
				continue
			}
			visible = append(visible, card)
		}
		section.Cards = visible
	}
	return section, nil
}

func (s *DefaultService) CreateCategory(ctx context.Context, title string, actorID uint64) (int, error) {
	id, outcome := s.repository.AddNewCategory(title, int(actorID))
	if !outcome.Success {
		return 0, errors.Conflict("Category already exists", nil)
	}

	s.recordActivity(actorID, audit.ActionCreateCategory, "section", id, title)
	return id, nil
}

func (s *DefaultService) RenameCategory(ctx context.Context, id int, title string, actorID uint64) error {
	outcome := s.repository.UpdateCategory(id, title, int(actorID))
	if !outcome.Success {
		return errors.NotFound("Category not found", nil)
	}

	s.recordActivity(actorID, audit.ActionRenameCategory, "section", id, title)
	return nil
}

func (s *DefaultService) CategoryHistory(ctx context.Context, id int) ([]SectionVersion, error) {
	section := s.repository.FindCategoryByID(id)
	if section == nil {
		return nil, errors.NotFound("Category not found", nil)
	}
	return section.Versions, nil
}

func (s *DefaultService) GetArticleBySlug(ctx context.Context, slug string, staffViewer bool) (*ArticleView, error) {
	return s.articleView(ctx, s.repository.FindCardBySlug(slug), staffViewer)
}

func (s *DefaultService) GetArticleByID(ctx context.Context, id int, staffViewer bool) (*ArticleView, error) {
	return s.articleView(ctx, s.repository.FindCardByID(id), staffViewer)
}

func (s *DefaultService) articleView(ctx context.Context, card *Card, staffViewer bool) (*ArticleView, error) {
	if card == nil {
		return nil, errors.NotFound("Article not found", nil)
	}
	if card.StaffOnly && !staffViewer {
		return nil, errors.Forbidden("Article is staff only", nil)
	}
	if card.Archived && !staffViewer {
		return nil, errors.NotFound("Article not found", nil)
	}

	return &ArticleView{
		Card:     *card,
		Rendered: s.renderBody(ctx, card),
	}, nil
}

// renderBody parses and renders the latest detailed description,
// caching the HTML per card version. The cache key embeds the version
// id, so an edit naturally misses and old entries age out via TTL.
func (s *DefaultService) renderBody(ctx context.Context, card *Card) string {
	latest := card.Latest()
	cacheKey := fmt.Sprintf("article:%d:v:%d:html", card.ID, latest.VersionID)

	var rendered string
	found, _ := s.cache.Get(ctx, cacheKey, &rendered)
	if found {
		return rendered
	}

	rendered = markup.RenderHTML(markup.Parse(latest.DetailedDescription))

	value := rendered
	s.pool.Submit(func(ctx context.Context) error {
		return s.cache.Set(ctx, cacheKey, value, 24*time.Hour)
	})

	return rendered
}

func (s *DefaultService) CreateArticle(ctx context.Context, input NewArticle) (int, error) {
	id, outcome := s.repository.AddNewArticle(input)
	if !outcome.Success {
		return 0, errors.Conflict("Article title already exists", nil)
	}

	s.recordActivity(uint64(input.EditedBy), audit.ActionCreateArticle, "card", id, input.Title)
	return id, nil
}

func (s *DefaultService) EditArticle(ctx context.Context, id int, fields CardUpdate, actorID uint64) error {
	outcome := s.repository.EditCard(id, fields, int(actorID))
	if !outcome.Success {
		return errors.NotFound("Article not found", nil)
	}

	s.recordActivity(actorID, audit.ActionEditArticle, "card", id, "")
	return nil
}

func (s *DefaultService) SetArchived(ctx context.Context, id int, archived bool, actorID uint64) error {
	outcome := s.repository.SetArchived(id, archived)
	if !outcome.Success {
		return errors.NotFound("Article not found", nil)
	}

	s.recordActivity(actorID, audit.ActionArchiveToggle, "card", id, fmt.Sprintf("archived=%t", archived))
	return nil
}

func (s *DefaultService) SetStaffOnly(ctx context.Context, id int, staffOnly bool, actorID uint64) error {
	outcome := s.repository.SetStaffOnly(id, staffOnly)
	if !outcome.Success {
		return errors.NotFound("Article not found", nil)
	}

	s.recordActivity(actorID, audit.ActionStaffToggle, "card", id, fmt.Sprintf("staff_only=%t", staffOnly))
	return nil
}

func (s *DefaultService) SearchArticles(ctx context.Context, query string, staffViewer bool) []SearchResult {
	results := s.repository.Search(query)
	if staffViewer {
		return results
	}

	visible := make([]SearchResult, 0, len(results))
	for _, result := range results {
		if result.Card.Archived || result.Card.StaffOnly {
			continue
		}
		visible = append(visible, result)
	}
	return visible
}

func (s *DefaultService) ArticleHistory(ctx context.Context, id int) ([]CardVersion, error) {
	card := s.repository.FindCardByID(id)
	if card == nil {
		return nil, errors.NotFound("Article not found", nil)
	}
	return card.Versions, nil
}

// DiffArticleVersions compares the detailed descriptions of two
// versions of one card.
func (s *DefaultService) DiffArticleVersions(ctx context.Context, id, from, to int) (*VersionDiff, error) {
	card := s.repository.FindCardByID(id)
	if card == nil {
		return nil, errors.NotFound("Article not found", nil)
	}

	fromVersion := findVersion(card.Versions, from)
	toVersion := findVersion(card.Versions, to)
	if fromVersion == nil || toVersion == nil {
		return nil, errors.NotFound("Version not found", nil)
	}

	return &VersionDiff{
		From:  from,
		To:    to,
		Lines: diff.Compare(fromVersion.DetailedDescription, toVersion.DetailedDescription),
	}, nil
}

func (s *DefaultService) ListActivity(ctx context.Context, page, pageSize int) ([]audit.Entry, int64, error) {
	return s.auditLog.List(page, pageSize)
}

func findVersion(versions []CardVersion, versionID int) *CardVersion {
	for i := range versions {
		if versions[i].VersionID == versionID {
			return &versions[i]
		}
	}
	return nil
}

// recordActivity persists an audit entry and fires the content webhook
// off the request path. Neither failure affects the caller's response.
func (s *DefaultService) recordActivity(actorID uint64, action, entityKind string, entityID int, detail string) {
	entry := &audit.Entry{
		ActorID:    actorID,
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Detail:     detail,
	}
	s.pool.Submit(func(ctx context.Context) error {
		return s.auditLog.Create(entry)
	})

	if s.notifier.Enabled() {
		s.pool.Submit(func(ctx context.Context) error {
			notifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return s.notifier.ContentChanged(notifyCtx, entityKind, entityID, action)
		})
	}
}
