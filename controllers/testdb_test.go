package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/handyheroes/handyman-backend/db"
)

// mockDB points the global connection at a sqlmock-backed instance and
// restores the previous one when the test ends.
func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	old := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = old
		conn.Close()
	})
	return mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "is_active"}).
		AddRow(1, "A", "a@x.com", "hashedsecret", "user", true)
}
