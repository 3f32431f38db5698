package infra_postgres_admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type adminDTO struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

func (d *Driver) FetchByEmail(ctx context.Context, email string) (model.Admin, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var dto adminDTO
	if err := d.db.GetContext(ctx, &dto, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Admin{}, session_auth.ErrResourceNotFound
		}
		return model.Admin{}, fmt.Errorf("failed to fetch admin: %w", err)
	}

	return model.Admin{
		ID:           dto.ID,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		CreatedAt:    dto.CreatedAt,
	}, nil
}

func (d *Driver) Store(ctx context.Context, a model.Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)
	`

	_, err := d.db.NamedExecContext(ctx, query, adminDTO{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return session_auth.ErrAdminExists
		}
		return fmt.Errorf("failed to store admin: %w", err)
	}
	return nil
}
