package catalogue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

var ErrProductNotFound = errors.New("product not found")

// Repository is the read side of the catalogue.
type Repository interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetAllProducts(ctx context.Context) ([]*Product, error)
	Close() error
}

type SQLRepository struct {
	db *sql.DB
}

func NewSQLRepository(dbPath string) (*SQLRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLRepository{db: db}, nil
}

func (r *SQLRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *SQLRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT product_id, description, image_ref, unit_price, stock
		FROM products
		WHERE product_id = $1
	`

	p := &Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Description,
		&p.ImageRef,
		&p.UnitPrice,
		&p.StockQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

func (r *SQLRepository) GetAllProducts(ctx context.Context) ([]*Product, error) {
	query := `
		SELECT product_id, description, image_ref, unit_price, stock
		FROM products
		ORDER BY product_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		err := rows.Scan(
			&p.ID,
			&p.Description,
			&p.ImageRef,
			&p.UnitPrice,
			&p.StockQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

// DB exposes the underlying handle so the inventory store can share the
// same database and transaction scope.
func (r *SQLRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}
