package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/repository"
)

// taskTemplate is one (title, category, responsible) triple of a plan
// checklist. Empty category and responsible fall back to the defaults.
type taskTemplate struct {
	title       string
	category    string
	responsible string
}

var startedTemplates = []taskTemplate{
	{"Análisis de Mercado Inicial", "Estrategia", "Admin"},
	{"Configuración de 1 Plataforma", "Redes", "Equipo"},
	{"Campaña Activa (Setup)", "Ads", "Trafficker"},
	{"Post Semanal 1", "Contenido", "Diseñador"},
	{"Post Semanal 2", "Contenido", "Diseñador"},
	{"Post Semanal 3", "Contenido", "Diseñador"},
	{"Post Semanal 4", "Contenido", "Diseñador"},
	{"Reporte Mensual", "Reporte", "Admin"},
}

func growthTemplates() []taskTemplate {
	templates := []taskTemplate{
		{"Análisis de Mercado Profundo", "Estrategia", "Admin"},
		{"Gestión 2 Plataformas", "Redes", "Equipo"},
		{"Configuración Bot IA", "Tech", "Dev"},
		{"Optimización Web Básica", "Web", "Dev"},
	}
	// 12 posts (3 per week)
	for week := 1; week <= 4; week++ {
		for post := 1; post <= 3; post++ {
			templates = append(templates, taskTemplate{
				title:       fmt.Sprintf("Semana %d: Post %d", week, post),
				category:    "Contenido",
				responsible: "Diseñador",
			})
		}
	}
	templates = append(templates,
		taskTemplate{"Campaña 1 (Branding)", "Ads", "Trafficker"},
		taskTemplate{"Campaña 2 (Conversión)", "Ads", "Trafficker"},
		taskTemplate{"Campaña 3 (Retargeting)", "Ads", "Trafficker"},
	)
	return templates
}

func scaleTemplates() []taskTemplate {
	templates := []taskTemplate{
		{"Estrategia Avanzada Omnicanal", "Estrategia", "Admin"},
		{"Automatización de Flujos", "Tech", "Dev"},
		{"Desarrollo/Mejora Ecosistema Web", "Web", "Dev"},
	}
	// 16 posts delivered as weekly packs
	for week := 1; week <= 4; week++ {
		templates = append(templates, taskTemplate{
			title:       fmt.Sprintf("Semana %d: Pack Contenido (4 posts)", week),
			category:    "Contenido",
			responsible: "Diseñador",
		})
	}
	templates = append(templates,
		taskTemplate{"Campañas High-Ticket", "Ads", "Trafficker"},
		taskTemplate{"Soporte VIP Mensual", "Soporte", "Admin"},
	)
	return templates
}

// PlanChecklist expands a client's plan tier into its task checklist. Every
// task starts Pendiente with the creation date as deadline; that deadline is
// the historical behavior, not the task's real due date.
func PlanChecklist(client *entities.Client, createdAt time.Time) []entities.Task {
	var templates []taskTemplate
	switch client.PlanBase {
	case entities.PlanStarted:
		templates = startedTemplates
	case entities.PlanGrowth:
		templates = growthTemplates()
	case entities.PlanScale:
		templates = scaleTemplates()
	default:
		templates = []taskTemplate{{"Onboarding Cliente", "Estrategia", "Admin"}}
	}

	today := createdAt.Format("2006-01-02")
	tasks := make([]entities.Task, 0, len(templates))
	for _, tpl := range templates {
		category := tpl.category
		if category == "" {
			category = "General"
		}
		responsible := tpl.responsible
		if responsible == "" {
			responsible = entities.ResponsibleUnassigned
		}
		tasks = append(tasks, entities.Task{
			Title:       tpl.title,
			Category:    category,
			Status:      entities.TaskPendiente,
			Responsible: responsible,
			Deadline:    today,
			ClientID:    client.ID,
		})
	}
	return tasks
}

// TaskGenerator creates a client's initial checklist at registration time.
type TaskGenerator struct {
	taskRepo *repository.TaskRepository
}

func NewTaskGenerator(taskRepo *repository.TaskRepository) *TaskGenerator {
	return &TaskGenerator{taskRepo: taskRepo}
}

// GenerateTasksForPlan inserts the plan checklist for a freshly created
// client. The batch runs in one transaction: either the whole checklist
// lands or none of it does. The caller keeps the client either way.
func (g *TaskGenerator) GenerateTasksForPlan(ctx context.Context, client *entities.Client) error {
	return g.taskRepo.CreateBatch(ctx, PlanChecklist(client, time.Now()))
}
