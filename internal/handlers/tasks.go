package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/middlewares"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/policy"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/service"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/validation"
)

type TaskHandler struct {
	svc *service.TaskSvc
}

func NewTaskHandler(svc *service.TaskSvc) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func actorFrom(c *gin.Context) policy.Actor {
	u := middlewares.CurrentUser(c)
	return policy.Actor{ID: u.ID, Role: u.Role}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var in validation.TaskPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validation.ValidateCreateTask(in); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}
	t, err := h.svc.Create(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Task created successfully", "task": t})
}

func (h *TaskHandler) List(c *gin.Context) {
	status := c.Query("status")
	priority := c.Query("priority")
	if msg := validation.ValidateTaskFilters(status, priority); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}
	tasks, err := h.svc.List(c.Request.Context(), actorFrom(c), status, priority, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(tasks), "tasks": tasks})
}

func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "task": t})
}

func (h *TaskHandler) Update(c *gin.Context) {
	var in validation.TaskPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := validation.ValidateUpdateTask(in); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), actorFrom(c), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task updated successfully", "task": t})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted successfully"})
}

func (h *TaskHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
