package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/biswa069/backend-intern-task/internal/domain"
)

// failingDBTX is a store.DBTX whose use fails the test: it verifies that
// invalid entities are rejected before any SQL is issued.
type failingDBTX struct {
	t *testing.T
}

func (f *failingDBTX) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	f.t.Fatal("unexpected ExecContext call")
	return nil, nil
}

func (f *failingDBTX) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	f.t.Fatal("unexpected PrepareContext call")
	return nil, nil
}

func (f *failingDBTX) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	f.t.Fatal("unexpected QueryContext call")
	return nil, nil
}

func (f *failingDBTX) QueryRowContext(context.Context, string, ...any) *sql.Row {
	f.t.Fatal("unexpected QueryRowContext call")
	return nil
}

func TestNewStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewPostgresUserStore(nil, nil) })
	assert.Panics(t, func() { NewPostgresTaskStore(nil, nil) })
}

func TestUserCreateValidatesBeforeSQL(t *testing.T) {
	t.Parallel()

	s := NewPostgresUserStore(&failingDBTX{t: t}, nil)

	// Invalid entity never reaches the database
	err := s.Create(context.Background(), &domain.User{})
	assert.ErrorIs(t, err, domain.ErrEmptyUserID)

	// A user without a hash is rejected even though domain validation of
	// a registration-shaped user (with plaintext) passes
	user := &domain.User{
		ID:       uuid.New(),
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Role:     domain.RoleUser,
	}
	err = s.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmptyHashedPassword)
}

func TestTaskCreateValidatesBeforeSQL(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(&failingDBTX{t: t}, nil)

	err := s.Create(context.Background(), &domain.Task{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskUserID)
}

func TestTaskUpdateStatusValidatesBeforeSQL(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(&failingDBTX{t: t}, nil)

	_, err := s.UpdateStatus(context.Background(), uuid.New(), "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
