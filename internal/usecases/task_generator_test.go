package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

func checklistFor(t *testing.T, plan string) []entities.Task {
	t.Helper()
	client := &entities.Client{ID: "client-1", Company: "Acme", PlanBase: plan}
	return PlanChecklist(client, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))
}

func TestPlanChecklist_Started(t *testing.T) {
	tasks := checklistFor(t, entities.PlanStarted)
	require.Len(t, tasks, 8)

	byCategory := map[string]int{}
	for _, task := range tasks {
		byCategory[task.Category]++
		assert.Equal(t, entities.TaskPendiente, task.Status)
		assert.Equal(t, "2026-03-14", task.Deadline)
		assert.Equal(t, "client-1", task.ClientID)
		assert.Zero(t, task.Progress)
	}
	assert.Equal(t, map[string]int{
		"Estrategia": 1,
		"Redes":      1,
		"Ads":        1,
		"Contenido":  4,
		"Reporte":    1,
	}, byCategory)
}

func TestPlanChecklist_Growth(t *testing.T) {
	tasks := checklistFor(t, entities.PlanGrowth)
	require.Len(t, tasks, 19)

	// every week/post combination exactly once
	posts := map[string]int{}
	for _, task := range tasks {
		if task.Category == "Contenido" {
			posts[task.Title]++
		}
	}
	require.Len(t, posts, 12)
	for week := 1; week <= 4; week++ {
		for post := 1; post <= 3; post++ {
			title := fmt.Sprintf("Semana %d: Post %d", week, post)
			assert.Equal(t, 1, posts[title], title)
		}
	}

	adsCount := 0
	for _, task := range tasks {
		if task.Category == "Ads" {
			adsCount++
		}
	}
	assert.Equal(t, 3, adsCount)
}

func TestPlanChecklist_Scale(t *testing.T) {
	tasks := checklistFor(t, entities.PlanScale)
	require.Len(t, tasks, 9)

	packs := []string{}
	for _, task := range tasks {
		if task.Category == "Contenido" {
			packs = append(packs, task.Title)
		}
	}
	assert.Equal(t, []string{
		"Semana 1: Pack Contenido (4 posts)",
		"Semana 2: Pack Contenido (4 posts)",
		"Semana 3: Pack Contenido (4 posts)",
		"Semana 4: Pack Contenido (4 posts)",
	}, packs)
}

func TestPlanChecklist_UnknownPlanFallsBackToOnboarding(t *testing.T) {
	for _, plan := range []string{"Unknown", ""} {
		t.Run("plan="+plan, func(t *testing.T) {
			tasks := checklistFor(t, plan)
			require.Len(t, tasks, 1)
			assert.Equal(t, "Onboarding Cliente", tasks[0].Title)
			assert.Equal(t, "Estrategia", tasks[0].Category)
			assert.Equal(t, entities.TaskPendiente, tasks[0].Status)
		})
	}
}

func TestPlanChecklist_DefaultsForEmptyTemplateFields(t *testing.T) {
	tasks := checklistFor(t, entities.PlanStarted)
	for _, task := range tasks {
		assert.NotEmpty(t, task.Category)
		assert.NotEmpty(t, task.Responsible)
	}
}
