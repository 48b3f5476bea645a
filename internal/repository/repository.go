package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/correagss/personal-control-finance/internal/models"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row does not exist or is owned by
// another user.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db       *sql.DB
	postgres bool
}

// Open connects to the database named by databaseURL and ensures the schema
// exists. A postgres:// URL selects the postgres driver; anything else is
// treated as a sqlite path.
func Open(databaseURL string) (*Repository, error) {
	postgres := strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://")

	driver := "sqlite"
	if postgres {
		driver = "postgres"
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if !postgres {
		// sqlite allows a single writer; one connection also keeps
		// :memory: databases from splitting across the pool.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	r := &Repository{db: db, postgres: postgres}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Close releases the underlying connection pool
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) migrate() error {
	var migrations []string
	if r.postgres {
		migrations = []string{
			`CREATE TABLE IF NOT EXISTS usuarios (
				id BIGSERIAL PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				hashed_password TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS transacoes (
				id BIGSERIAL PRIMARY KEY,
				descricao TEXT NOT NULL,
				valor DOUBLE PRECISION NOT NULL,
				tipo TEXT NOT NULL,
				data TIMESTAMPTZ NOT NULL,
				owner_id BIGINT NOT NULL REFERENCES usuarios(id)
			)`,
		}
	} else {
		migrations = []string{
			`CREATE TABLE IF NOT EXISTS usuarios (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				email TEXT NOT NULL UNIQUE,
				hashed_password TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS transacoes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				descricao TEXT NOT NULL,
				valor REAL NOT NULL,
				tipo TEXT NOT NULL,
				data TIMESTAMP NOT NULL,
				owner_id INTEGER NOT NULL REFERENCES usuarios(id)
			)`,
		}
	}

	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders to $1..$n for postgres
func (r *Repository) rebind(query string) string {
	if !r.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.Usuario) error {
	query := r.rebind(`
		INSERT INTO usuarios (email, hashed_password)
		VALUES (?, ?)
		RETURNING id`)
	err := r.db.QueryRow(query, user.Email, user.HashedPassword).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.Usuario, error) {
	user := &models.Usuario{}
	query := r.rebind(`
		SELECT id, email, hashed_password
		FROM usuarios
		WHERE email = ?`)
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.HashedPassword)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateTransacao creates a new transaction in the database
func (r *Repository) CreateTransacao(t *models.Transacao) error {
	query := r.rebind(`
		INSERT INTO transacoes (descricao, valor, tipo, data, owner_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	err := r.db.QueryRow(query, t.Descricao, t.Valor, t.Tipo, t.Data, t.OwnerID).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransacoes retrieves all transactions owned by the given user
func (r *Repository) ListTransacoes(ownerID int64) ([]models.Transacao, error) {
	query := r.rebind(`
		SELECT id, descricao, valor, tipo, data, owner_id
		FROM transacoes
		WHERE owner_id = ?
		ORDER BY id`)
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transacoes := []models.Transacao{}
	for rows.Next() {
		var t models.Transacao
		if err := rows.Scan(&t.ID, &t.Descricao, &t.Valor, &t.Tipo, &t.Data, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transacoes = append(transacoes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transacoes, nil
}

// FindTransacao retrieves a transaction by id, scoped to its owner
func (r *Repository) FindTransacao(id, ownerID int64) (*models.Transacao, error) {
	t := &models.Transacao{}
	query := r.rebind(`
		SELECT id, descricao, valor, tipo, data, owner_id
		FROM transacoes
		WHERE id = ? AND owner_id = ?`)
	err := r.db.QueryRow(query, id, ownerID).Scan(&t.ID, &t.Descricao, &t.Valor, &t.Tipo, &t.Data, &t.OwnerID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return t, nil
}

// UpdateTransacao replaces descricao, valor and tipo of an owned transaction.
// The creation timestamp is left untouched.
func (r *Repository) UpdateTransacao(t *models.Transacao) error {
	query := r.rebind(`
		UPDATE transacoes
		SET descricao = ?, valor = ?, tipo = ?
		WHERE id = ? AND owner_id = ?`)
	res, err := r.db.Exec(query, t.Descricao, t.Valor, t.Tipo, t.ID, t.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTransacao permanently removes an owned transaction
func (r *Repository) DeleteTransacao(id, ownerID int64) error {
	query := r.rebind(`DELETE FROM transacoes WHERE id = ? AND owner_id = ?`)
	res, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumByTipo sums transaction amounts of the given user grouped by direction
func (r *Repository) SumByTipo(ownerID int64) (entradas, saidas float64, err error) {
	query := r.rebind(`
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'entrada' THEN valor ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN tipo = 'saida' THEN valor ELSE 0 END), 0)
		FROM transacoes
		WHERE owner_id = ?`)
	if err = r.db.QueryRow(query, ownerID).Scan(&entradas, &saidas); err != nil {
		return 0, 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return entradas, saidas, nil
}
