package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage uses. Tests substitute a mock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type customerRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type tierRepository struct {
	storage *Storage
}

type operationRepository struct {
	storage *Storage
}

// newPgxPool is swapped in tests to inject a mock pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization and tier seeding.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Tiers() repository.TierRepository {
	return &tierRepository{storage: s}
}

func (s *Storage) Operations() repository.OperationRepository {
	return &operationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tiers (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            discount INT NOT NULL,
            cashback INT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            tier_id BIGINT NOT NULL REFERENCES tiers(id),
            bonus DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            modifier TEXT NOT NULL DEFAULT '',
            value DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS operations (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            check_sum DOUBLE PRECISION NOT NULL,
            discount DOUBLE PRECISION NOT NULL,
            discount_percent DOUBLE PRECISION NOT NULL,
            cashback DOUBLE PRECISION NOT NULL,
            cashback_percent DOUBLE PRECISION NOT NULL,
            allowed_write_off DOUBLE PRECISION NOT NULL,
            write_off DOUBLE PRECISION NOT NULL DEFAULT 0,
            done BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            confirmed_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_operations_customer ON operations(customer_id, created_at DESC)`,
		`INSERT INTO tiers (name, discount, cashback)
            VALUES ('Bronze', 0, 5), ('Silver', 10, 3), ('Gold', 15, 0)
            ON CONFLICT (name) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, tier_id, bonus FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.TierID, &c.Bonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) GetBatch(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	result := make(map[int64]model.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `SELECT id, name, modifier, value FROM products WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Modifier, &p.Value); err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- TierRepository implementation ---

func (r *tierRepository) GetByID(ctx context.Context, id int64) (*model.Tier, error) {
	const query = `SELECT id, name, discount, cashback FROM tiers WHERE id=$1`
	var t model.Tier
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Discount, &t.Cashback)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrTierNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tierRepository) List(ctx context.Context) ([]model.Tier, error) {
	const query = `SELECT id, name, discount, cashback FROM tiers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Tier
	for rows.Next() {
		var t model.Tier
		if err := rows.Scan(&t.ID, &t.Name, &t.Discount, &t.Cashback); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OperationRepository implementation ---

func (r *operationRepository) Create(ctx context.Context, op *model.Operation) (int64, error) {
	const query = `INSERT INTO operations
        (customer_id, check_sum, discount, discount_percent, cashback, cashback_percent, allowed_write_off, write_off, done)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 0, FALSE)
        RETURNING id`
	var id int64
	err := r.storage.pool.QueryRow(ctx, query,
		op.CustomerID, op.CheckSum, op.Discount, op.DiscountPercent,
		op.Cashback, op.CashbackPercent, op.AllowedWriteOff,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *operationRepository) GetByID(ctx context.Context, id int64) (*model.Operation, error) {
	const query = `SELECT id, customer_id, check_sum, discount, discount_percent, cashback, cashback_percent,
                          allowed_write_off, write_off, done, created_at, confirmed_at
                   FROM operations WHERE id=$1`
	var op model.Operation
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&op.ID, &op.CustomerID, &op.CheckSum, &op.Discount, &op.DiscountPercent,
		&op.Cashback, &op.CashbackPercent, &op.AllowedWriteOff, &op.WriteOff,
		&op.Done, &op.CreatedAt, &op.ConfirmedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOperationNotFound
		}
		return nil, err
	}
	return &op, nil
}

func (r *operationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Operation, error) {
	const query = `SELECT id, customer_id, check_sum, discount, discount_percent, cashback, cashback_percent,
                          allowed_write_off, write_off, done, created_at, confirmed_at
                   FROM operations WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Operation
	for rows.Next() {
		var op model.Operation
		if err := rows.Scan(
			&op.ID, &op.CustomerID, &op.CheckSum, &op.Discount, &op.DiscountPercent,
			&op.Cashback, &op.CashbackPercent, &op.AllowedWriteOff, &op.WriteOff,
			&op.Done, &op.CreatedAt, &op.ConfirmedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyConfirmation settles one pending operation in a single transaction.
// The customer and operation rows are locked, the preconditions re-checked
// under the locks, and both updates commit together or not at all.
func (r *operationRepository) ApplyConfirmation(ctx context.Context, customerID, operationID int64, writeOff float64) (*model.ConfirmationReceipt, error) {
	var receipt *model.ConfirmationReceipt
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const customerQuery = `SELECT bonus FROM customers WHERE id=$1 FOR UPDATE`
		var bonus float64
		if err := tx.QueryRow(ctx, customerQuery, customerID).Scan(&bonus); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrCustomerNotFound
			}
			return err
		}

		const operationQuery = `SELECT check_sum, discount, discount_percent, cashback, cashback_percent, allowed_write_off, done
                                FROM operations WHERE id=$1 AND customer_id=$2 FOR UPDATE`
		var op model.Operation
		err := tx.QueryRow(ctx, operationQuery, operationID, customerID).Scan(
			&op.CheckSum, &op.Discount, &op.DiscountPercent,
			&op.Cashback, &op.CashbackPercent, &op.AllowedWriteOff, &op.Done,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrOperationNotFound
			}
			return err
		}

		if op.Done {
			return domainErrors.ErrOperationConfirmed
		}
		if writeOff < 0 || writeOff > op.AllowedWriteOff {
			return &domainErrors.WriteOffLimitError{Allowed: op.AllowedWriteOff, Attempted: writeOff}
		}
		if writeOff > bonus {
			return &domainErrors.InsufficientBalanceError{Available: bonus, Attempted: writeOff}
		}

		newBalance := bonus - writeOff + op.Cashback

		if _, err := tx.Exec(ctx, `UPDATE customers SET bonus=$1 WHERE id=$2`, newBalance, customerID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE operations SET write_off=$1, done=TRUE, confirmed_at=NOW() WHERE id=$2`, writeOff, operationID); err != nil {
			return err
		}

		receipt = &model.ConfirmationReceipt{
			OperationID:     operationID,
			CustomerID:      customerID,
			CheckSum:        op.CheckSum,
			Discount:        op.Discount,
			DiscountPercent: op.DiscountPercent,
			Cashback:        op.Cashback,
			CashbackPercent: op.CashbackPercent,
			WriteOff:        writeOff,
			NewBalance:      newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
