package usecases

import (
	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/repository"
)

// DashboardUsecase assembles the role-scoped dashboard views out of the raw
// client/task/member lists.
type DashboardUsecase struct {
	clientRepo *repository.ClientRepository
	taskRepo   *repository.TaskRepository
	userRepo   *repository.UserRepository
}

func NewDashboardUsecase(clientRepo *repository.ClientRepository, taskRepo *repository.TaskRepository, userRepo *repository.UserRepository) *DashboardUsecase {
	return &DashboardUsecase{
		clientRepo: clientRepo,
		taskRepo:   taskRepo,
		userRepo:   userRepo,
	}
}

type ClientProgress struct {
	Client    entities.Client `json:"client"`
	Progress  int             `json:"progress"`
	TaskCount int             `json:"taskCount"`
}

type Summary struct {
	Clients         []ClientProgress `json:"clients"`
	OverallProgress int              `json:"overallProgress"`
}

type MemberWorkload struct {
	Member   entities.User   `json:"member"`
	Tasks    []entities.Task `json:"tasks"`
	Progress int             `json:"progress"`
}

type Workload struct {
	Unassigned []entities.Task  `json:"unassigned"`
	Members    []MemberWorkload `json:"members"`
}

// Summary returns the viewer's visible clients with per-client and overall
// progress aggregates.
func (u *DashboardUsecase) Summary(viewer entities.Session) (*Summary, error) {
	clients, err := u.clientRepo.GetAll()
	if err != nil {
		return nil, err
	}
	tasks, err := u.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}

	visibleTasks := VisibleTasks(viewer, tasks)
	byClient := map[string][]entities.Task{}
	for _, t := range visibleTasks {
		byClient[t.ClientID] = append(byClient[t.ClientID], t)
	}

	summary := &Summary{Clients: []ClientProgress{}}
	for _, c := range VisibleClients(viewer, clients, tasks) {
		clientTasks := byClient[c.ID]
		summary.Clients = append(summary.Clients, ClientProgress{
			Client:    c,
			Progress:  OverallProgress(clientTasks),
			TaskCount: len(clientTasks),
		})
	}
	summary.OverallProgress = OverallProgress(visibleTasks)
	return summary, nil
}

// Workload returns per-member task buckets. Admins also get the unassigned
// inbox; non-admins only get their own bucket.
func (u *DashboardUsecase) Workload(viewer entities.Session) (*Workload, error) {
	tasks, err := u.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	members, err := u.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	visibleTasks := VisibleTasks(viewer, tasks)
	workload := &Workload{Unassigned: []entities.Task{}, Members: []MemberWorkload{}}

	if viewer.IsAdmin() {
		workload.Unassigned = UnassignedTasks(visibleTasks, members)
	}

	viewerName := NormalizeName(viewer.Name)
	for _, m := range members {
		if !viewer.IsAdmin() && NormalizeName(m.Name) != viewerName {
			continue
		}
		memberTasks := TasksFor(m.Name, visibleTasks)
		workload.Members = append(workload.Members, MemberWorkload{
			Member:   m,
			Tasks:    memberTasks,
			Progress: OverallProgress(memberTasks),
		})
	}
	return workload, nil
}
