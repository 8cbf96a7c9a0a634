package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

func TestVisibleTasks(t *testing.T) {
	tasks := []entities.Task{
		{ID: "1", Responsible: "ana"},
		{ID: "2", Responsible: "Ana "},
		{ID: "3", Responsible: "Carlos"},
	}

	t.Run("non-admin matches by trimmed lowercase name", func(t *testing.T) {
		viewer := entities.Session{ID: "u1", Name: "Ana", Role: "Diseñador"}
		visible := VisibleTasks(viewer, tasks)
		require.Len(t, visible, 2)
		assert.Equal(t, "1", visible[0].ID)
		assert.Equal(t, "2", visible[1].ID)
	})

	t.Run("role label does not inherit", func(t *testing.T) {
		viewer := entities.Session{ID: "u2", Name: "Pedro", Role: "Diseñador"}
		visible := VisibleTasks(viewer, []entities.Task{{ID: "1", Responsible: "Diseñador"}})
		assert.Empty(t, visible)
	})

	t.Run("Administrador role sees everything", func(t *testing.T) {
		viewer := entities.Session{ID: "u3", Name: "Jefa", Role: "Administrador"}
		assert.Len(t, VisibleTasks(viewer, tasks), 3)
	})

	t.Run("hardcoded admin id sees everything", func(t *testing.T) {
		viewer := entities.Session{ID: "admin", Name: "Admin", Role: ""}
		assert.Len(t, VisibleTasks(viewer, tasks), 3)
	})
}

func TestVisibleClients(t *testing.T) {
	clients := []entities.Client{{ID: "c1"}, {ID: "c2"}}
	tasks := []entities.Task{
		{ID: "1", ClientID: "c1", Responsible: "Ana"},
		{ID: "2", ClientID: "c2", Responsible: "Carlos"},
	}

	viewer := entities.Session{ID: "u1", Name: "ana", Role: "Diseñador"}
	visible := VisibleClients(viewer, clients, tasks)
	require.Len(t, visible, 1)
	assert.Equal(t, "c1", visible[0].ID)

	admin := entities.Session{ID: "admin", Name: "Admin"}
	assert.Len(t, VisibleClients(admin, clients, tasks), 2)
}

func TestUnassignedTasks(t *testing.T) {
	members := []entities.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: " Carlos "},
	}
	tasks := []entities.Task{
		{ID: "1", Responsible: "Por Asignar"},
		{ID: "2", Responsible: "  SIN ASIGNAR "},
		{ID: "3", Responsible: "Diseñador"}, // role label nobody claims
		{ID: "4", Responsible: "ana"},
		{ID: "5", Responsible: "carlos"},
		{ID: "6", Responsible: ""},
	}

	unassigned := UnassignedTasks(tasks, members)
	ids := []string{}
	for _, task := range unassigned {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "6"}, ids)
}

func TestOverallProgress(t *testing.T) {
	t.Run("empty set is zero", func(t *testing.T) {
		assert.Zero(t, OverallProgress(nil))
		assert.Zero(t, OverallProgress([]entities.Task{}))
	})

	t.Run("absent progress counts as zero", func(t *testing.T) {
		tasks := []entities.Task{{Progress: 50}, {}}
		assert.Equal(t, 25, OverallProgress(tasks))
	})

	t.Run("mean is rounded", func(t *testing.T) {
		tasks := []entities.Task{{Progress: 100}, {Progress: 100}, {Progress: 1}}
		assert.Equal(t, 67, OverallProgress(tasks))
	})
}

func TestApplyStatusProgress(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	t.Run("Terminado without progress forces 100", func(t *testing.T) {
		patch := entities.TaskPatch{Status: strPtr(entities.TaskTerminado)}
		ApplyStatusProgress(&patch)
		require.NotNil(t, patch.Progress)
		assert.Equal(t, 100, *patch.Progress)
	})

	t.Run("Pendiente without progress forces 0", func(t *testing.T) {
		patch := entities.TaskPatch{Status: strPtr(entities.TaskPendiente)}
		ApplyStatusProgress(&patch)
		require.NotNil(t, patch.Progress)
		assert.Equal(t, 0, *patch.Progress)
	})

	t.Run("explicit progress wins", func(t *testing.T) {
		patch := entities.TaskPatch{Status: strPtr(entities.TaskTerminado), Progress: intPtr(80)}
		ApplyStatusProgress(&patch)
		assert.Equal(t, 80, *patch.Progress)
	})

	t.Run("En proceso leaves progress untouched", func(t *testing.T) {
		patch := entities.TaskPatch{Status: strPtr(entities.TaskEnProceso)}
		ApplyStatusProgress(&patch)
		assert.Nil(t, patch.Progress)
	})

	t.Run("no status change leaves progress untouched", func(t *testing.T) {
		patch := entities.TaskPatch{}
		ApplyStatusProgress(&patch)
		assert.Nil(t, patch.Progress)
	})
}

func TestTasksFor(t *testing.T) {
	tasks := []entities.Task{
		{ID: "1", Responsible: " ana"},
		{ID: "2", Responsible: "Carlos"},
	}
	mine := TasksFor("Ana ", tasks)
	require.Len(t, mine, 1)
	assert.Equal(t, "1", mine[0].ID)
}
