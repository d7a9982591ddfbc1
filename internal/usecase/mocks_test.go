package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/infra/queue"
)

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) UpdateLifecycle(ctx context.Context, id string, lifecycle entity.Lifecycle) error {
	args := m.Called(ctx, id, lifecycle)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) HasDependents(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockVisitorRepository
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) Create(ctx context.Context, v *entity.VisitorRecord) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVisitorRepository) FindByContactID(ctx context.Context, contactID string) (*entity.VisitorRecord, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VisitorRecord), args.Error(1)
}

func (m *MockVisitorRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	args := m.Called(ctx, contactID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVisitorRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, rec *entity.MemberRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByContactID(ctx context.Context, contactID string) (*entity.MemberRecord, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MemberRecord), args.Error(1)
}

func (m *MockMemberRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	args := m.Called(ctx, contactID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSoulWinningRepository
type MockSoulWinningRepository struct {
	mock.Mock
}

func (m *MockSoulWinningRepository) Create(ctx context.Context, r *entity.SoulWinningRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSoulWinningRepository) FindByID(ctx context.Context, id string) (*entity.SoulWinningRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SoulWinningRecord), args.Error(1)
}

func (m *MockSoulWinningRepository) ExistsForContact(ctx context.Context, contactID string) (bool, error) {
	args := m.Called(ctx, contactID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSoulWinningRepository) SetConvertedTo(ctx context.Context, id string, target entity.Lifecycle) error {
	args := m.Called(ctx, id, target)
	return args.Error(0)
}

func (m *MockSoulWinningRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFollowUpRepository
type MockFollowUpRepository struct {
	mock.Mock
}

func (m *MockFollowUpRepository) Create(ctx context.Context, f *entity.FollowUp) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFollowUpRepository) FindByID(ctx context.Context, id string) (*entity.FollowUp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowUp), args.Error(1)
}

func (m *MockFollowUpRepository) Update(ctx context.Context, f *entity.FollowUp) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFollowUpRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFollowUpRepository) ClaimDue(ctx context.Context, before time.Time) ([]*entity.FollowUp, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FollowUp), args.Error(1)
}

// MockAuditSink
type MockAuditSink struct {
	mock.Mock
}

func (m *MockAuditSink) Append(ctx context.Context, e *entity.AuditEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishWorkflowEvent(ctx context.Context, evt queue.WorkflowEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
