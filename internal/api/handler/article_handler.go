package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

// ArticleHandler handles articles and their comment threads.
type ArticleHandler struct {
	articles ports.ArticleService
}

func NewArticleHandler(articles ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

type publishArticleRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type articleByVetRequest struct {
	VetID string `json:"vet_id" validate:"required"`
}

type articleByIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type deleteArticleRequest struct {
	ID string `json:"id" validate:"required"`
}

type articleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	VetID     string    `json:"vet_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		VetID:     a.VetID,
		CreatedAt: a.CreatedAt,
	}
}

type addCommentRequest struct {
	ArticleID string `json:"article_id" validate:"required"`
	Content   string `json:"content"    validate:"required"`
}

type commentsRequest struct {
	ArticleID string `json:"article_id" validate:"required"`
}

type commentUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type commentResponse struct {
	ID        string              `json:"id"`
	Content   string              `json:"content"`
	CreatedAt time.Time           `json:"created_at"`
	User      commentUserResponse `json:"user"`
}

// Publish handles POST /api/articles. The authoring vet is the caller.
//
// @Summary      Publish an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishArticleRequest  true  "Article"
// @Success      201   {object}  articleResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/articles [post]
func (h *ArticleHandler) Publish(c echo.Context) error {
	var req publishArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vetID, err := ctxVetID(c)
	if err != nil {
		return err
	}

	article, err := h.articles.Publish(c.Request().Context(), ports.PublishArticleInput{
		Title:   req.Title,
		Content: req.Content,
		VetID:   vetID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toArticleResponse(article))
}

// ListByVet handles POST /api/articles/get.
//
// @Summary      List a vet's articles
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      articleByVetRequest  true  "Vet id"
// @Success      200   {array}   articleResponse
// @Router       /api/articles/get [post]
func (h *ArticleHandler) ListByVet(c echo.Context) error {
	var req articleByVetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	articles, err := h.articles.ListByVet(c.Request().Context(), req.VetID)
	if err != nil {
		return err
	}

	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, toArticleResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID handles POST /api/articles/getArticleById.
//
// @Summary      Fetch one article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      articleByIDRequest  true  "Article id"
// @Success      200   {object}  articleResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/articles/getArticleById [post]
func (h *ArticleHandler) GetByID(c echo.Context) error {
	var req articleByIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Get(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/articles. Only the authoring vet may delete.
//
// @Summary      Delete an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteArticleRequest  true  "Article id"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/articles [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	var req deleteArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vetID, err := ctxVetID(c)
	if err != nil {
		return err
	}
	if err := h.articles.Delete(c.Request().Context(), req.ID, vetID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "article deleted"})
}

// AddComment handles POST /api/comments. The commenting user is the caller.
//
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCommentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/comments [post]
func (h *ArticleHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	comment, err := h.articles.AddComment(c.Request().Context(), ports.AddCommentInput{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Content:   req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, commentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	})
}

// Comments handles POST /api/comments/get.
//
// @Summary      List an article's comments
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      commentsRequest  true  "Article id"
// @Success      200   {array}   commentResponse
// @Router       /api/comments/get [post]
func (h *ArticleHandler) Comments(c echo.Context) error {
	var req commentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comments, err := h.articles.Comments(c.Request().Context(), req.ArticleID)
	if err != nil {
		return err
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, commentResponse{
			ID:        cm.ID,
			Content:   cm.Content,
			CreatedAt: cm.CreatedAt,
			User: commentUserResponse{
				ID:    cm.User.ID,
				Name:  cm.User.Name,
				Email: cm.User.Email,
			},
		})
	}
	return c.JSON(http.StatusOK, resp)
}
