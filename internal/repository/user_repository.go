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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := r.db.Exec(context.Background(),
		"INSERT INTO users (id, name, role, email, password_hash, status) VALUES ($1, $2, $3, $4, $5, $6)",
		user.ID, user.Name, user.Role, user.Email, user.PasswordHash, user.Status)
	return err
}

func (r *UserRepository) GetByID(id string) (*entities.User, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT id, name, role, email, password_hash, status FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(email string) (*entities.User, error) {
	row := r.db.QueryRow(context.Background(),
		"SELECT id, name, role, email, password_hash, status FROM users WHERE LOWER(email) = LOWER($1)",
		strings.TrimSpace(email))
	return scanUser(row)
}

func (r *UserRepository) GetAll() ([]entities.User, error) {
	rows, err := r.db.Query(context.Background(),
		"SELECT id, name, role, email, password_hash, status FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Update applies the non-nil patch fields. Returns (nil, nil) when the user
// does not exist.
func (r *UserRepository) Update(id string, patch *entities.UserPatch) (*entities.User, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	if len(sets) == 0 {
		return r.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING id, name, role, email, password_hash, status",
		strings.Join(sets, ", "), len(args))
	row := r.db.QueryRow(context.Background(), query, args...)
	return scanUser(row)
}

func (r *UserRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), "DELETE FROM users WHERE id = $1", id)
	return err
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Role, &u.Email, &u.PasswordHash, &u.Status)
	if err == pgx.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
