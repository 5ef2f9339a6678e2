package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshgeng1116/TodoApp/internal/models"
	"github.com/joshgeng1116/TodoApp/internal/services"
)

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Completed   bool      `json:"completed"`
}

func newTodoResponse(todo models.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		CreatedAt:   todo.CreatedAt,
		Completed:   todo.Completed,
	}
}

func (h *handlerImpl) HandleListTodos(c *gin.Context) {
	todos := h.todos.List()

	response := make([]todoResponse, len(todos))
	for i, todo := range todos {
		response[i] = newTodoResponse(todo)
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTodo(c *gin.Context) {
	todo, err := h.todos.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			abort(c, newNotFoundError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to get todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTodoResponse(todo))
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

func (h *handlerImpl) HandleCreateTodo(c *gin.Context) {
	var req createTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	params := services.CreateParams{
		Title: req.Title,
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	todo, err := h.todos.Create(params)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			abort(c, newBadRequestError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to create todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, newTodoResponse(todo))
}

type updateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleUpdateTodo(c *gin.Context) {
	var req updateTodoRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	params := services.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	todo, err := h.todos.Update(c.Param("id"), params)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			abort(c, newNotFoundError(err.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to update todo")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTodoResponse(todo))
}

func (h *handlerImpl) HandleDeleteTodo(c *gin.Context) {
	if !h.todos.Delete(c.Param("id")) {
		abort(c, newNotFoundError("todo not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
