package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/dental_backend/config"
)

func TestFromCentralConfig(t *testing.T) {
	cfg := FromCentralConfig(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "postgres",
		Password: "password",
		DBName:   "dental_clinic",
		Pool:     config.DatabasePoolConfig{MaxOpenConns: 10, ConnMaxLifetimeMin: 2},
	})

	assert.Equal(t, "host=db port=5433 user=postgres password=password dbname=dental_clinic sslmode=disable", cfg.DSN())
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Equal(t, 2*time.Minute, cfg.ConnMaxLifetime())
	assert.Equal(t, 5*time.Minute, Config{}.ConnMaxLifetime())
}

func TestCreateDatabaseIfNotExists(t *testing.T) {
	existsQuery := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`)

	t.Run("already exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(existsQuery).WithArgs("dental_clinic").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, createDatabaseIfNotExists(context.Background(), db, "dental_clinic"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates quoted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(existsQuery).WithArgs("dental_clinic").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(regexp.QuoteMeta(`CREATE DATABASE "dental_clinic"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, createDatabaseIfNotExists(context.Background(), db, "dental_clinic"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(existsQuery).WillReturnError(errors.New("connection reset"))

		err = createDatabaseIfNotExists(context.Background(), db, "dental_clinic")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
