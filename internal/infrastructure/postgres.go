package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	// Auto-migrate schema
	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	// Clients Table
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS clients (
			id VARCHAR(64) PRIMARY KEY,
			company VARCHAR(255) NOT NULL,
			contact_name VARCHAR(255) DEFAULT '',
			email VARCHAR(255) DEFAULT '',
			plan_base VARCHAR(50) DEFAULT '',
			status VARCHAR(50) DEFAULT 'Activo',
			start_date VARCHAR(20) DEFAULT '',
			renewal_date VARCHAR(20) DEFAULT '',
			drive_folder TEXT DEFAULT '',
			access_code VARCHAR(64) DEFAULT '',
			platforms JSONB DEFAULT '[]',
			metrics JSONB DEFAULT '{}',
			billing_cycle VARCHAR(10) DEFAULT '30',
			password VARCHAR(255) DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create clients table: %w", err)
	}

	// Tasks Table
	// responsible is a denormalized name string, not a foreign key: tasks may
	// point at role labels ("Diseñador") nobody claims yet.
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id VARCHAR(64) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			category VARCHAR(50) DEFAULT 'General',
			status VARCHAR(50) DEFAULT 'Pendiente',
			progress INT DEFAULT 0,
			client_id VARCHAR(64) NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
			responsible VARCHAR(255) DEFAULT 'Por asignar',
			deadline VARCHAR(20) DEFAULT '',
			description TEXT DEFAULT '',
			comments JSONB DEFAULT '[]',
			attachments JSONB DEFAULT '[]',
			client_feedback TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}

	// Users Table (team members)
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(50) DEFAULT '',
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) DEFAULT '',
			status VARCHAR(50) DEFAULT 'Activo',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	// Service Packages Table
	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS service_packages (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT DEFAULT '',
			price VARCHAR(50) DEFAULT '',
			features JSONB DEFAULT '[]',
			status VARCHAR(50) DEFAULT 'Activo',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create service_packages table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_tasks_client_id ON tasks(client_id);")
	if err != nil {
		return fmt.Errorf("create tasks index: %w", err)
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
