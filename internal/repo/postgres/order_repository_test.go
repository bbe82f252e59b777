package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestJoinRollback(t *testing.T) {
	saveErr := errors.New("upsert order: boom")
	rbErr := errors.New("conn reset")

	cases := []struct {
		name    string
		err     error
		rbErr   error
		wantNil bool
		wantIs  []error
	}{
		{name: "committed", err: nil, rbErr: pgx.ErrTxClosed, wantNil: true},
		{name: "rolled back cleanly", err: saveErr, rbErr: nil, wantIs: []error{saveErr}},
		{name: "closed after failure", err: saveErr, rbErr: fmt.Errorf("wrapped: %w", pgx.ErrTxClosed), wantIs: []error{saveErr}},
		{name: "rollback failed", err: saveErr, rbErr: rbErr, wantIs: []error{saveErr, rbErr}},
		{name: "rollback failed without save error", err: nil, rbErr: rbErr, wantIs: []error{rbErr}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := joinRollback(tc.err, tc.rbErr)
			if tc.wantNil {
				require.NoError(t, got)
				return
			}
			require.Error(t, got)
			for _, want := range tc.wantIs {
				require.ErrorIs(t, got, want)
			}
			if errors.Is(tc.rbErr, rbErr) {
				require.Contains(t, got.Error(), "rollback: conn reset")
			}
		})
	}
}
