package composables

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
}

func TestUseTx_FallsBackToPool(t *testing.T) {
	_, err := UseTx(context.Background())
	require.ErrorIs(t, err, ErrNoPool)
}

func TestUseTx_ReturnsStoredTx(t *testing.T) {
	tx := &stubTx{}
	got, err := UseTx(WithTx(context.Background(), tx))
	require.NoError(t, err)
	require.Same(t, tx, got)
}

func TestInTx_RequiresPool(t *testing.T) {
	called := false
	err := InTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrNoPool)
	require.False(t, called)
}

func TestInTxResult_RequiresPool(t *testing.T) {
	out, err := InTxResult(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})
	require.ErrorIs(t, err, ErrNoPool)
	require.Zero(t, out)
}
