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

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(svc *entities.ServicePackage) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO service_packages (id, name, description, price, features, status) VALUES ($1, $2, $3, $4, $5, $6)",
		svc.ID, svc.Name, svc.Description, svc.Price, svc.Features, svc.Status)
	return err
}

func (r *ServiceRepository) GetByID(id string) (*entities.ServicePackage, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT id, name, description, price, features, status FROM service_packages WHERE id = $1", id)
	return scanService(row)
}

func (r *ServiceRepository) GetAll() ([]entities.ServicePackage, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT id, name, description, price, features, status FROM service_packages ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []entities.ServicePackage{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	return services, rows.Err()
}

// Update applies the non-nil patch fields. Returns (nil, nil) when the
// service does not exist.
func (r *ServiceRepository) Update(id string, patch *entities.ServicePatch) (*entities.ServicePackage, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Features != nil {
		add("features", *patch.Features)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE service_packages SET %s WHERE id = $%d RETURNING id, name, description, price, features, status",
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRow(context.Background(), query, args...)
	return scanService(row)
}

func (r *ServiceRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM service_packages WHERE id = $1", id)
	return err
}

func scanService(row pgx.Row) (*entities.ServicePackage, error) {
	var s entities.ServicePackage
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Features, &s.Status)
	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
