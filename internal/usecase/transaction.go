package usecase

import (
	"context"
	"log"
)

// Transaction sequences multi-step mutations against the remote store, which
// only guarantees per-statement atomicity. When a step fails, compensations
// for the already-committed steps run in reverse order.
//
// Execute returns the failing operation's error unchanged so business-rule
// errors keep their type on the way up.
type Transaction struct {
	operations    []Operation
	compensations []Compensation
}

type Operation struct {
	Name string
	Fn   func(context.Context) error
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{
		operations:    []Operation{},
		compensations: []Compensation{},
	}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, Operation{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, Compensation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			log.Printf("transaction: operation '%s' failed, rolling back %d operation(s): %v", op.Name, i, err)
			t.rollback(ctx, i)
			return err
		}
	}

	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i < len(t.compensations) {
			comp := t.compensations[i]
			if err := comp.Fn(ctx); err != nil {
				log.Printf("transaction: compensation '%s' failed: %v (inconsistency risk)", comp.Name, err)
			}
		}
	}
}
