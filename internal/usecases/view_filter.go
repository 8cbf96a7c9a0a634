package usecases

import (
	"math"
	"strings"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

// Role-scoped visibility rules. The dashboard surfaces used to re-implement
// these independently; they live here once and every handler goes through
// them.

// NormalizeName is the matching key for the denormalized responsible field:
// trimmed and lowercased, nothing fuzzier.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// VisibleTasks returns the tasks the viewer may see. Admins see everything;
// everyone else sees only tasks whose responsible matches their own name.
// Role labels do not inherit: a Diseñador does not see tasks tagged
// "Diseñador" unless that happens to be their name.
func VisibleTasks(viewer entities.Session, tasks []entities.Task) []entities.Task {
	if viewer.IsAdmin() {
		return tasks
	}
	name := NormalizeName(viewer.Name)
	visible := []entities.Task{}
	for _, t := range tasks {
		if NormalizeName(t.Responsible) == name {
			visible = append(visible, t)
		}
	}
	return visible
}

// VisibleClients returns the clients the viewer may see: all of them for
// admins, otherwise only clients with at least one visible task.
func VisibleClients(viewer entities.Session, clients []entities.Client, tasks []entities.Task) []entities.Client {
	if viewer.IsAdmin() {
		return clients
	}
	visibleTasks := VisibleTasks(viewer, tasks)
	byClient := map[string]bool{}
	for _, t := range visibleTasks {
		byClient[t.ClientID] = true
	}
	visible := []entities.Client{}
	for _, c := range clients {
		if byClient[c.ID] {
			visible = append(visible, c)
		}
	}
	return visible
}

// UnassignedTasks is the admin inbox: tasks still marked "por asignar"/"sin
// asignar" plus tasks whose responsible matches no known member name, i.e. a
// role label nobody claims.
func UnassignedTasks(tasks []entities.Task, members []entities.User) []entities.Task {
	memberNames := map[string]bool{}
	for _, m := range members {
		memberNames[NormalizeName(m.Name)] = true
	}

	unassigned := []entities.Task{}
	for _, t := range tasks {
		resp := t.Responsible
		if resp == "" {
			resp = entities.ResponsibleUnassigned
		}
		resp = NormalizeName(resp)
		if resp == "por asignar" || resp == "sin asignar" || !memberNames[resp] {
			unassigned = append(unassigned, t)
		}
	}
	return unassigned
}

// TasksFor returns the tasks assigned to a member by name match.
func TasksFor(memberName string, tasks []entities.Task) []entities.Task {
	name := NormalizeName(memberName)
	mine := []entities.Task{}
	for _, t := range tasks {
		if NormalizeName(t.Responsible) == name {
			mine = append(mine, t)
		}
	}
	return mine
}

// OverallProgress is the rounded arithmetic mean of task progress, 0 for an
// empty set. No weighting by deadline, category or anything else.
func OverallProgress(tasks []entities.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0
	for _, t := range tasks {
		sum += t.Progress
	}
	return int(math.Round(float64(sum) / float64(len(tasks))))
}

// ApplyStatusProgress implements the status-driven progress shortcut used by
// the task editors: Terminado without an explicit progress forces 100,
// Pendiente forces 0. Other statuses leave progress alone; whether En
// revisión or Aprobado should also force a value was never decided upstream.
func ApplyStatusProgress(patch *entities.TaskPatch) {
	if patch.Status == nil || patch.Progress != nil {
		return
	}
	switch *patch.Status {
	case entities.TaskTerminado:
		full := 100
		patch.Progress = &full
	case entities.TaskPendiente:
		zero := 0
		patch.Progress = &zero
	}
}
