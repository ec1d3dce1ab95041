package repo

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"postgres://u@h/db", "postgres://u@h/db?sslmode=require"},
		{"postgres://u@h/db?connect_timeout=5", "postgres://u@h/db?connect_timeout=5&sslmode=require"},
		{"user=postgres dbname=potable", "user=postgres dbname=potable sslmode=require"},
		{"postgres://u@h/db?sslmode=disable", "postgres://u@h/db?sslmode=disable"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, withSSLMode(tt.dsn))
	}
}

func TestMigrate(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, r.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("ana", "ana@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := r.CreateUser(context.Background(), "ana", "ana@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByLogin(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, password FROM users")).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}).AddRow(7, "hash"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, password FROM users")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "password"}))

	id, hash, err := r.GetByLogin(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, "hash", hash)

	_, _, err = r.GetByLogin(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDesign(t *testing.T) {
	r, mock := newMock(t)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO designs")).
		WithArgs(sqlmock.AnyArg(), 7, "Vereda El Salitre", "fime", true, []byte(`{"flow_lps":5}`), []byte(`{}`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	d, err := r.CreateDesign(context.Background(), Design{
		UserID: 7, Name: "Vereda El Salitre", Technology: "fime", Compliant: true,
		Input: json.RawMessage(`{"flow_lps":5}`), Result: json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, created, d.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDesignError(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO designs")).WillReturnError(errors.New("boom"))

	_, err := r.CreateDesign(context.Background(), Design{UserID: 7})
	assert.ErrorContains(t, err, "insert design")
}

func TestListDesigns(t *testing.T) {
	r, mock := newMock(t)
	a, b := uuid.New(), uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, technology, compliant, created_at FROM designs")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "technology", "compliant", "created_at"}).
			AddRow(a.String(), "Planta A", "fime", true, now).
			AddRow(b.String(), "Planta B", "osmosis", false, now.Add(-time.Hour)))

	list, err := r.ListDesigns(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, "osmosis", list[1].Technology)
	assert.False(t, list[1].Compliant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDesignsEmpty(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM designs").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "technology", "compliant", "created_at"}))

	list, err := r.ListDesigns(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetDesign(t *testing.T) {
	r, mock := newMock(t)
	id := uuid.New()
	now := time.Now().UTC()
	cols := []string{"id", "user_id", "name", "technology", "compliant", "input", "result", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM designs WHERE id").
		WithArgs(id, 7).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(id.String(), 7, "Planta A", "fime", true, []byte(`{"flow_lps":5}`), []byte(`{"technology":"fime"}`), now))
	mock.ExpectQuery("SELECT (.+) FROM designs WHERE id").
		WithArgs(id, 8).
		WillReturnRows(sqlmock.NewRows(cols))

	d, err := r.GetDesign(context.Background(), 7, id)
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
	assert.JSONEq(t, `{"technology":"fime"}`, string(d.Result))

	_, err = r.GetDesign(context.Background(), 8, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDesign(t *testing.T) {
	r, mock := newMock(t)
	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM designs")).
		WithArgs(id, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM designs")).
		WithArgs(id, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.DeleteDesign(context.Background(), 7, id))
	assert.ErrorIs(t, r.DeleteDesign(context.Background(), 7, id), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
