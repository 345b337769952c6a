package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/api/middleware"
	"quill/internal/delivery/api/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post-related handlers
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreatePost handles post creation for the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Unauthorized")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.postUC.CreatePost(c.Request().Context(), userID, &usecase.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": output.Message,
		"post":    output.Post,
	})
}
