package content

import (
	"net/http"
	"strconv"

	"helpcenter-backend/internal/errors"
	"helpcenter-backend/internal/user"
	"helpcenter-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func staffViewer(c *gin.Context) bool {
	return user.IsStaffRole(c.GetString("user_role"))
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.service.ListCategories(c.Request.Context())})
}

func (h *Handler) ShowCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid category id", err))
		return
	}

	section, err := h.service.GetCategory(c.Request.Context(), id, staffViewer(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, section)
}

type CreateOrRenameCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var form CreateOrRenameCategoryRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	id, err := h.service.CreateCategory(c.Request.Context(), form.Title, c.GetUint64("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "title": form.Title})
}

func (h *Handler) RenameCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid category id", err))
		return
	}

	var form CreateOrRenameCategoryRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	if err := h.service.RenameCategory(c.Request.Context(), id, form.Title, c.GetUint64("user_id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "title": form.Title})
}

func (h *Handler) ShowCategoryHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid category id", err))
		return
	}

	versions, err := h.service.CategoryHistory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": versions})
}

func (h *Handler) ShowArticleBySlug(c *gin.Context) {
	view, err := h.service.GetArticleBySlug(c.Request.Context(), c.Param("slug"), staffViewer(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *Handler) ShowArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	view, err := h.service.GetArticleByID(c.Request.Context(), id, staffViewer(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type CreateArticleRequest struct {
	Title               string `json:"title" binding:"required,min=1,max=255"`
	Description         string `json:"description" binding:"required"`
	DetailedDescription string `json:"detailed_description" binding:"required"`
	Category            int    `json:"category" binding:"required"`
	ImgSrc              string `json:"img_src"`
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var form CreateArticleRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	id, err := h.service.CreateArticle(c.Request.Context(), NewArticle{
		Title:               form.Title,
		Description:         form.Description,
		DetailedDescription: form.DetailedDescription,
		Category:            form.Category,
		ImgSrc:              form.ImgSrc,
		EditedBy:            int(c.GetUint64("user_id")),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "slug": GenerateSlug(form.Title)})
}

type EditArticleRequest struct {
	Title               *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailed_description"`
	Category            *int    `json:"category"`
}

func (h *Handler) EditArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	var form EditArticleRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	fields := CardUpdate{
		Title:               form.Title,
		Description:         form.Description,
		DetailedDescription: form.DetailedDescription,
		Category:            form.Category,
	}

	if err := h.service.EditArticle(c.Request.Context(), id, fields, c.GetUint64("user_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ArchiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

func (h *Handler) SetArchived(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	var form ArchiveRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	if err := h.service.SetArchived(c.Request.Context(), id, *form.Archived, c.GetUint64("user_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

type StaffOnlyRequest struct {
	StaffOnly *bool `json:"staff_only" binding:"required"`
}

func (h *Handler) SetStaffOnly(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	var form StaffOnlyRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(errors.NewValidationError(err))
		return
	}

	if err := h.service.SetStaffOnly(c.Request.Context(), id, *form.StaffOnly, c.GetUint64("user_id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SearchArticles(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.Error(errors.BadRequest("Missing search query", nil))
		return
	}

	results := h.service.SearchArticles(c.Request.Context(), query, staffViewer(c))
	c.JSON(http.StatusOK, gin.H{"data": results})
}

func (h *Handler) ShowArticleHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	versions, err := h.service.ArticleHistory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": versions})
}

func (h *Handler) ShowArticleDiff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid article id", err))
		return
	}

	from, err := strconv.Atoi(c.Query("from"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid from version", err))
		return
	}
	to, err := strconv.Atoi(c.Query("to"))
	if err != nil {
		c.Error(errors.BadRequest("Invalid to version", err))
		return
	}

	result, err := h.service.DiffArticleVersions(c.Request.Context(), id, from, to)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ShowActivity(c *gin.Context) {
	page, pageSize := utils.GetPaginationParams(c)

	entries, total, err := h.service.ListActivity(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "total": total})
}
