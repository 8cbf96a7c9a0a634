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

const clientColumns = `id, company, contact_name, email, plan_base, status, start_date, renewal_date,
	drive_folder, access_code, platforms, metrics, billing_cycle, password`

type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(client *entities.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	if client.Platforms == nil {
		client.Platforms = []string{}
	}
	_, err := r.db.Exec(context.Background(), `
		INSERT INTO clients (id, company, contact_name, email, plan_base, status, start_date,
			renewal_date, drive_folder, access_code, platforms, metrics, billing_cycle, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		client.ID, client.Company, client.ContactName, client.Email, client.PlanBase,
		client.Status, client.StartDate, client.RenewalDate, client.DriveFolder,
		client.AccessCode, client.Platforms, client.Metrics, client.BillingCycle, client.Password)
	return err
}

func (r *ClientRepository) GetByID(id string) (*entities.Client, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT "+clientColumns+" FROM clients WHERE id = $1", id)
	return scanClient(row)
}

func (r *ClientRepository) GetByEmail(email string) (*entities.Client, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT "+clientColumns+" FROM clients WHERE LOWER(email) = LOWER($1)", email)
	return scanClient(row)
}

func (r *ClientRepository) GetByAccessCode(code string) (*entities.Client, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT "+clientColumns+" FROM clients WHERE access_code = $1", code)
	return scanClient(row)
}

func (r *ClientRepository) GetAll() ([]entities.Client, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT "+clientColumns+" FROM clients ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []entities.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// Update applies the non-nil patch fields. Returns (nil, nil) when the client
// does not exist.
func (r *ClientRepository) Update(id string, patch *entities.ClientPatch) (*entities.Client, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.ContactName != nil {
		add("contact_name", *patch.ContactName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PlanBase != nil {
		add("plan_base", *patch.PlanBase)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.RenewalDate != nil {
		add("renewal_date", *patch.RenewalDate)
	}
	if patch.DriveFolder != nil {
		add("drive_folder", *patch.DriveFolder)
	}
	if patch.AccessCode != nil {
		add("access_code", *patch.AccessCode)
	}
	if patch.Platforms != nil {
		add("platforms", *patch.Platforms)
	}
	if patch.Metrics != nil {
		add("metrics", *patch.Metrics)
	}
	if patch.BillingCycle != nil {
		add("billing_cycle", *patch.BillingCycle)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE clients SET %s WHERE id = $%d RETURNING "+clientColumns,
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRow(context.Background(), query, args...)
	return scanClient(row)
}

// Delete removes the client; its tasks cascade at the database level.
func (r *ClientRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM clients WHERE id = $1", id)
	return err
}

func scanClient(row pgx.Row) (*entities.Client, error) {
	var c entities.Client
	err := row.Scan(&c.ID, &c.Company, &c.ContactName, &c.Email, &c.PlanBase, &c.Status,
		&c.StartDate, &c.RenewalDate, &c.DriveFolder, &c.AccessCode, &c.Platforms,
		&c.Metrics, &c.BillingCycle, &c.Password)
	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
