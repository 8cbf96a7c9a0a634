package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

const taskColumns = `id, title, category, status, progress, client_id, responsible, deadline,
	description, comments, attachments, client_feedback`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *entities.Task) error {
	prepareTask(task)
	_, err := r.db.Exec(context.Background(), insertTaskSQL, taskArgs(task)...)
	return err
}

// CreateBatch inserts a generated checklist in a single transaction so a
// failed insert leaves no truncated task set behind.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []entities.Task) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin task batch: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range tasks {
		prepareTask(&tasks[i])
		if _, err := tx.Exec(ctx, insertTaskSQL, taskArgs(&tasks[i])...); err != nil {
			return fmt.Errorf("insert task %q: %w", tasks[i].Title, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *TaskRepository) GetByID(id string) (*entities.Task, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	return scanTask(row)
}

func (r *TaskRepository) GetAll() ([]entities.Task, error) {
	return r.query("SELECT " + taskColumns + " FROM tasks ORDER BY created_at")
}

func (r *TaskRepository) GetByClient(clientID string) ([]entities.Task, error) {
	return r.query("SELECT "+taskColumns+" FROM tasks WHERE client_id = $1 ORDER BY created_at", clientID)
}

// Update applies the non-nil patch fields. Returns (nil, nil) when the task
// does not exist.
func (r *TaskRepository) Update(id string, patch *entities.TaskPatch) (*entities.Task, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Progress != nil {
		add("progress", *patch.Progress)
	}
	if patch.Responsible != nil {
		add("responsible", *patch.Responsible)
	}
	if patch.Deadline != nil {
		add("deadline", *patch.Deadline)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Comments != nil {
		add("comments", *patch.Comments)
	}
	if patch.Attachments != nil {
		add("attachments", *patch.Attachments)
	}
	if patch.ClientFeedback != nil {
		add("client_feedback", *patch.ClientFeedback)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d RETURNING "+taskColumns,
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRow(context.Background(), query, args...)
	return scanTask(row)
}

func (r *TaskRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM tasks WHERE id = $1", id)
	return err
}

func (r *TaskRepository) query(sql string, args ...interface{}) ([]entities.Task, error) {
	rows, err := r.db.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []entities.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

const insertTaskSQL = `
	INSERT INTO tasks (id, title, category, status, progress, client_id, responsible,
		deadline, description, comments, attachments, client_feedback)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func prepareTask(t *entities.Task) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Comments == nil {
		t.Comments = []byte("[]")
	}
	if t.Attachments == nil {
		t.Attachments = []byte("[]")
	}
}

func taskArgs(t *entities.Task) []interface{} {
	return []interface{}{
		t.ID, t.Title, t.Category, t.Status, t.Progress, t.ClientID, t.Responsible,
		t.Deadline, t.Description, t.Comments, t.Attachments, t.ClientFeedback,
	}
}

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	err := row.Scan(&t.ID, &t.Title, &t.Category, &t.Status, &t.Progress, &t.ClientID,
		&t.Responsible, &t.Deadline, &t.Description, &t.Comments, &t.Attachments,
		&t.ClientFeedback)
	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
