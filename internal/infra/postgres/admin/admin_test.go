package infra_postgres_admin

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type AdminInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "sqlmock")),
		ctx:    context.Background(),
	}
}

func testAdmin() model.Admin {
	return model.Admin{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: []byte("$2a$04$hash"),
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *AdminInfraUnitSuite) TestFetchByEmail(t provider.T) {
	t.Parallel()

	t.Run("Should fetch admin", func(t provider.T) {
		r := initResources(t)
		a := testAdmin()
		r.mock.ExpectQuery("SELECT (.+) FROM admins").
			WithArgs(a.Email).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(a.ID.String(), a.Email, a.PasswordHash, a.CreatedAt))

		got, err := r.driver.FetchByEmail(r.ctx, a.Email)
		assert.NoError(t, err)
		assert.Equal(t, a, got)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should map missing admin to not found", func(t provider.T) {
		r := initResources(t)
		r.mock.ExpectQuery("SELECT (.+) FROM admins").
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := r.driver.FetchByEmail(r.ctx, "ghost@example.com")
		assert.ErrorIs(t, err, session_auth.ErrResourceNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *AdminInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		execErr       error
		expectedError error
		errorContains string
	}{
		{
			name: "Should store admin",
		},
		{
			name:          "Should map unique violation to existing admin",
			execErr:       &pq.Error{Code: "23505"},
			expectedError: session_auth.ErrAdminExists,
		},
		{
			name:          "Should wrap other failures",
			execErr:       errors.New("insert error"),
			errorContains: "failed to store admin",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			a := testAdmin()

			exp := r.mock.ExpectExec("INSERT INTO admins").
				WithArgs(a.ID.String(), a.Email, a.PasswordHash, a.CreatedAt)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := r.driver.Store(r.ctx, a)
			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
			case tc.errorContains != "":
				assert.ErrorContains(t, err, tc.errorContains)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(AdminInfraUnitSuite))
}
