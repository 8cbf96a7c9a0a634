package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/usecases"
)

// ListTasks returns all tasks, optionally scoped to ?clientId=.
func (h *Handler) ListTasks(c *gin.Context) {
	var (
		tasks []entities.Task
		err   error
	)
	if clientID := c.Query("clientId"); clientID != "" {
		tasks, err = h.taskRepo.GetByClient(clientID)
	} else {
		tasks, err = h.taskRepo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	var task entities.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}
	if task.ClientID == "" || task.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	if task.Category == "" {
		task.Category = "General"
	}
	if task.Status == "" {
		task.Status = entities.TaskPendiente
	}
	if task.Responsible == "" {
		task.Responsible = entities.ResponsibleUnassigned
	}
	task.Title = SanitizeString(TruncateString(task.Title, MaxTitleLength))

	if err := h.taskRepo.Create(&task); err != nil {
		h.log.Error().Err(err).Msg("create task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update. A status change without an explicit
// progress value runs through the status-driven progress rule first.
func (h *Handler) UpdateTask(c *gin.Context) {
	var patch entities.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	usecases.ApplyStatusProgress(&patch)

	task, err := h.taskRepo.Update(c.Param("id"), &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.taskRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
