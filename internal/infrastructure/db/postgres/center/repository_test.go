package center

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "hospital-manager-api/internal/domain/center"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func centerRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "version", "name", "city", "address", "created_at", "updated_at", "deleted",
	})
}

func TestRepository_CreateCenter(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(InsertCenter)).
		WithArgs("North Clinic", "Madrid", "Main St 1").
		WillReturnRows(centerRows().
			AddRow(uint64(5), int64(0), "North Clinic", "Madrid", "Main St 1", now, now, false))

	repo := NewRepository(mock)

	c, err := repo.CreateCenter(context.Background(), domain.Center{
		Name:    "North Clinic",
		City:    "Madrid",
		Address: "Main St 1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID(5), c.ID)
	assert.Equal(t, int64(0), c.Version, "fresh rows start at version zero")
}

func TestRepository_CreateCenter_UniqueViolation(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(InsertCenter)).
		WithArgs("North Clinic", "Madrid", "Main St 1").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := NewRepository(mock)

	_, err := repo.CreateCenter(context.Background(), domain.Center{
		Name:    "North Clinic",
		City:    "Madrid",
		Address: "Main St 1",
	})

	assert.ErrorIs(t, err, ErrCenterAlreadyExists)
}

func TestRepository_UpdateCenter(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(UpdateCenterCAS)).
		WithArgs("North Clinic", "Madrid", "Main St 2", uint64(5), int64(3)).
		WillReturnRows(centerRows().
			AddRow(uint64(5), int64(4), "North Clinic", "Madrid", "Main St 2", now, now, false))

	repo := NewRepository(mock)

	c, err := repo.UpdateCenter(context.Background(), domain.Center{
		ID:      5,
		Version: 3,
		Name:    "North Clinic",
		City:    "Madrid",
		Address: "Main St 2",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), c.Version)
}

func TestRepository_UpdateCenter_StaleVersionMatchesNothing(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(UpdateCenterCAS)).
		WithArgs("North Clinic", "Madrid", "Main St 2", uint64(5), int64(2)).
		WillReturnRows(centerRows())

	repo := NewRepository(mock)

	c, err := repo.UpdateCenter(context.Background(), domain.Center{
		ID:      5,
		Version: 2,
		Name:    "North Clinic",
		City:    "Madrid",
		Address: "Main St 2",
	})

	require.NoError(t, err, "a stale version is not a query failure")
	assert.Nil(t, c, "nil result signals the CAS matched no row")
}

func TestRepository_FetchCenterByID_NotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectCenterByID)).
		WithArgs(uint64(99)).
		WillReturnRows(centerRows())

	repo := NewRepository(mock)

	c, err := repo.FetchCenterByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRepository_SoftDeleteRunsInTransaction(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(SelectCenterForUpdate)).
		WithArgs(uint64(5)).
		WillReturnRows(centerRows().
			AddRow(uint64(5), int64(1), "North Clinic", "Madrid", "Main St 1", now, now, false))
	mock.ExpectExec(regexp.QuoteMeta(SoftDeleteCenterByID)).
		WithArgs(uint64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewRepository(mock)
	ctx := context.Background()

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)

	c, err := repo.FetchCenterForUpdate(ctx, tx, 5)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.ID(5), c.ID)

	require.NoError(t, repo.SoftDeleteCenter(ctx, tx, 5))
	require.NoError(t, tx.Commit(ctx))
}

func TestRepository_ExistsByName(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(ExistsCenterByName)).
		WithArgs("North Clinic", uint64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewRepository(mock)

	exists, err := repo.ExistsByName(context.Background(), "North Clinic", 0)

	require.NoError(t, err)
	assert.True(t, exists)
}
