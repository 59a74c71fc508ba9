package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSessionRepo(t *testing.T) (*SessionSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewSessionSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestSessionSQLite_Load(t *testing.T) {
	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantToken      string
		wantErr        bool
		errContainsStr string
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"token"}).AddRow("tok123")
				m.ExpectQuery(regexp.QuoteMeta(selectSessionSQL)).
					WithArgs(sessionRowID).
					WillReturnRows(rows)
			},
			wantToken: "tok123",
		},
		{
			name: "absent (ErrNoRows)",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSessionSQL)).
					WithArgs(sessionRowID).
					WillReturnError(sql.ErrNoRows)
			},
			wantToken: "",
		},
		{
			name: "query error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSessionSQL)).
					WithArgs(sessionRowID).
					WillReturnError(errors.New("db query failed"))
			},
			wantErr:        true,
			errContainsStr: "select session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockSessionRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			token, err := repo.Load(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Fatalf("unexpected token: want %q, got %q", tt.wantToken, token)
			}
		})
	}
}

func TestSessionSQLite_Save(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		mockExpect     func(sqlmock.Sqlmock)
		wantErr        bool
		errContainsStr string
	}{
		{
			name:  "success",
			token: "tok123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(upsertSessionSQL)).
					WithArgs(sessionRowID, "tok123", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:  "overwrite is one statement",
			token: "tok456",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(upsertSessionSQL)).
					WithArgs(sessionRowID, "tok456", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:  "exec error",
			token: "tok789",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(upsertSessionSQL)).
					WithArgs(sessionRowID, "tok789", sqlmock.AnyArg()).
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr:        true,
			errContainsStr: "upsert session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockSessionRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			err := repo.Save(context.Background(), tt.token)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSessionSQLite_Clear(t *testing.T) {
	t.Run("deletes the row", func(t *testing.T) {
		repo, mock, cleanup := newMockSessionRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSessionSQL)).
			WithArgs(sessionRowID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Clear(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("idempotent on absent row", func(t *testing.T) {
		repo, mock, cleanup := newMockSessionRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSessionSQL)).
			WithArgs(sessionRowID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Clear(context.Background()); err != nil {
			t.Fatalf("clear of absent row must not error, got %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := newMockSessionRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSessionSQL)).
			WithArgs(sessionRowID).
			WillReturnError(errors.New("db exec failed"))

		err := repo.Clear(context.Background())
		if err == nil || !strings.Contains(err.Error(), "delete session") {
			t.Fatalf("expected wrapped delete error, got %v", err)
		}
	})
}
