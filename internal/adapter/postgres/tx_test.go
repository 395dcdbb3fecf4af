package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestInTxCommits(t *testing.T) {
	tx := &fakeTx{}
	err := inTx(context.Background(), fakeBeginner{tx: tx}, func(pgx.Tx) error { return nil })
	assert.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestInTxCommitFailure(t *testing.T) {
	commitErr := errors.New("connection reset")
	tx := &fakeTx{commitErr: commitErr}
	ran := false

	err := inTx(context.Background(), fakeBeginner{tx: tx}, func(pgx.Tx) error {
		ran = true
		return nil
	})
	assert.True(t, ran)
	assert.ErrorIs(t, err, commitErr)
	assert.True(t, tx.rolledBack)
}

func TestInTxRollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	err := inTx(context.Background(), fakeBeginner{tx: tx}, func(pgx.Tx) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestInTxBeginFailure(t *testing.T) {
	err := inTx(context.Background(), fakeBeginner{err: assert.AnError}, func(pgx.Tx) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})
	assert.ErrorIs(t, err, assert.AnError)
}
