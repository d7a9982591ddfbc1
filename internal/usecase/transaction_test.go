package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebms7/shepherd-backend/internal/usecase"
)

func TestTransaction_AllOperationsRun(t *testing.T) {
	txn := usecase.NewTransaction()
	var order []string

	txn.AddOperation("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	txn.AddOperation("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	err := txn.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTransaction_FailureReturnsOriginalError(t *testing.T) {
	txn := usecase.NewTransaction()
	opErr := &usecase.AlreadyMemberError{ContactID: "contact-1"}

	txn.AddOperation("promote", func(ctx context.Context) error {
		return opErr
	})

	err := txn.Execute(context.Background())

	// The error must come back unchanged, not wrapped, so callers can still
	// match on its type.
	assert.Equal(t, opErr, err)
	assert.True(t, usecase.IsAlreadyMember(err))
}

func TestTransaction_RollbackRunsInReverse(t *testing.T) {
	txn := usecase.NewTransaction()
	var order []string

	txn.AddOperation("a", func(ctx context.Context) error { return nil })
	txn.AddCompensation("undo_a", func(ctx context.Context) error {
		order = append(order, "undo_a")
		return nil
	})
	txn.AddOperation("b", func(ctx context.Context) error { return nil })
	txn.AddCompensation("undo_b", func(ctx context.Context) error {
		order = append(order, "undo_b")
		return nil
	})
	txn.AddOperation("c", func(ctx context.Context) error {
		return &usecase.DependencyError{Op: "c"}
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	assert.Equal(t, []string{"undo_b", "undo_a"}, order)
}

func TestTransaction_FailedOperationIsNotCompensated(t *testing.T) {
	txn := usecase.NewTransaction()
	compensated := false

	txn.AddOperation("only", func(ctx context.Context) error {
		return &usecase.DependencyError{Op: "only"}
	})
	txn.AddCompensation("undo_only", func(ctx context.Context) error {
		compensated = true
		return nil
	})

	err := txn.Execute(context.Background())

	assert.Error(t, err)
	assert.False(t, compensated)
}
