package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/sevatrack/volunteer-hours/pkg/db"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "nil stays nil",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows becomes not found",
			in:   pgx.ErrNoRows,
			want: db.ErrNotFound,
		},
		{
			name: "wrapped no rows becomes not found",
			in:   fmt.Errorf("query: %w", pgx.ErrNoRows),
			want: db.ErrNotFound,
		},
		{
			name: "unique violation becomes duplicate",
			in:   &pgconn.PgError{Code: "23505"},
			want: db.ErrDuplicateParticipation,
		},
		{
			name: "foreign key violation becomes not found",
			in:   &pgconn.PgError{Code: "23503"},
			want: db.ErrNotFound,
		},
		{
			name: "context cancellation becomes store unavailable",
			in:   context.Canceled,
			want: db.ErrStoreUnavailable,
		},
		{
			name: "deadline becomes store unavailable",
			in:   context.DeadlineExceeded,
			want: db.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslateError_UnknownErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, translateError(boom))

	pgErr := &pgconn.PgError{Code: "42P01"}
	assert.Equal(t, error(pgErr), translateError(pgErr))
}
