package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/calebms7/shepherd-backend/internal/entity"
	"github.com/calebms7/shepherd-backend/internal/usecase"
)

type bulkFixture struct {
	coordinator *usecase.BulkCoordinator
	followUps   *MockFollowUpRepository
	contacts    *MockContactRepository
	souls       *MockSoulWinningRepository
	visitors    *MockVisitorRepository
	members     *MockMemberRepository
	sink        *MockAuditSink
	events      *MockEventPublisher
}

func newBulkFixture() *bulkFixture {
	followUps := new(MockFollowUpRepository)
	contacts := new(MockContactRepository)
	souls := new(MockSoulWinningRepository)
	visitors := new(MockVisitorRepository)
	members := new(MockMemberRepository)
	sink := new(MockAuditSink)
	events := new(MockEventPublisher)

	audit := usecase.NewAuditWriter(sink)
	followUpUC := usecase.NewFollowUpUseCase(followUps, contacts, audit)
	lifecycle := usecase.NewLifecycleUseCase(contacts, visitors, members, audit, events)
	conversions := usecase.NewConversionUseCase(souls, lifecycle, audit)

	return &bulkFixture{
		coordinator: usecase.NewBulkCoordinator(followUpUC, conversions),
		followUps:   followUps,
		contacts:    contacts,
		souls:       souls,
		visitors:    visitors,
		members:     members,
		sink:        sink,
		events:      events,
	}
}

func pendingFollowUp(id string) *entity.FollowUp {
	return &entity.FollowUp{
		ID:           id,
		ContactID:    "contact-1",
		Type:         "visitor_followup",
		Status:       entity.FollowUpPending,
		NextActionAt: time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestBulkComplete_PartialFailure(t *testing.T) {
	f := newBulkFixture()

	f.followUps.On("FindByID", mock.Anything, "a").Return(pendingFollowUp("a"), nil)
	f.followUps.On("FindByID", mock.Anything, "b").Return(nil, &usecase.NotFoundError{Kind: "follow_up", ID: "b"})
	f.followUps.On("FindByID", mock.Anything, "c").Return(pendingFollowUp("c"), nil)
	f.followUps.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.sink.On("Append", mock.Anything, mock.Anything).Return(nil)

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkComplete, []string{"a", "b", "c"}, usecase.BulkParams{}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, usecase.OutcomePartial, report.Outcome())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, "b", report.Errors[0].ID)
	assert.Contains(t, report.Errors[0].Message, "not found")
}

func TestBulkComplete_AllSucceed(t *testing.T) {
	f := newBulkFixture()

	f.followUps.On("FindByID", mock.Anything, "a").Return(pendingFollowUp("a"), nil)
	f.followUps.On("FindByID", mock.Anything, "b").Return(pendingFollowUp("b"), nil)
	f.followUps.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.sink.On("Append", mock.Anything, mock.Anything).Return(nil)

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkComplete, []string{"a", "b"}, usecase.BulkParams{}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, usecase.OutcomeSuccess, report.Outcome())
	assert.Equal(t, 2, report.SuccessCount)
	assert.Empty(t, report.Errors)
}

func TestBulkComplete_AllFail(t *testing.T) {
	f := newBulkFixture()

	f.followUps.On("FindByID", mock.Anything, mock.AnythingOfType("string")).Return(nil, &usecase.NotFoundError{Kind: "follow_up", ID: "x"})

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkComplete, []string{"a", "b"}, usecase.BulkParams{}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, usecase.OutcomeFailure, report.Outcome())
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 2, report.FailureCount)
}

func TestBulkDelete_Success(t *testing.T) {
	f := newBulkFixture()

	f.followUps.On("FindByID", mock.Anything, "a").Return(pendingFollowUp("a"), nil)
	f.followUps.On("Delete", mock.Anything, "a").Return(nil)
	f.sink.On("Append", mock.Anything, mock.Anything).Return(nil)

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkDelete, []string{"a"}, usecase.BulkParams{}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	f.followUps.AssertCalled(t, "Delete", mock.Anything, "a")
}

func TestBulkAssign_SetsAssignee(t *testing.T) {
	f := newBulkFixture()

	f.followUps.On("FindByID", mock.Anything, "a").Return(pendingFollowUp("a"), nil)
	f.followUps.On("Update", mock.Anything, mock.MatchedBy(func(fu *entity.FollowUp) bool {
		return fu.AssignedTo != nil && *fu.AssignedTo == "user-7"
	})).Return(nil)
	f.sink.On("Append", mock.Anything, mock.Anything).Return(nil)

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkAssign, []string{"a"}, usecase.BulkParams{AssignedTo: "user-7"}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	f.followUps.AssertExpectations(t)
}

func TestBulkConvert_RoutesToConversion(t *testing.T) {
	f := newBulkFixture()
	record := newSoulFixture(nil)
	contact := newContactFixture(entity.LifecycleContact)

	f.souls.On("FindByID", mock.Anything, record.ID).Return(record, nil)
	f.contacts.On("FindByID", mock.Anything, contact.ID).Return(contact, nil)
	f.visitors.On("ExistsForContact", mock.Anything, contact.ID).Return(false, nil)
	f.visitors.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.contacts.On("UpdateLifecycle", mock.Anything, contact.ID, entity.LifecycleVisitor).Return(nil)
	f.souls.On("SetConvertedTo", mock.Anything, record.ID, entity.LifecycleVisitor).Return(nil)
	f.sink.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.events.On("PublishWorkflowEvent", mock.Anything, mock.Anything).Return(nil)

	report, err := f.coordinator.Apply(context.Background(), usecase.BulkConvert, []string{record.ID}, usecase.BulkParams{Target: entity.LifecycleVisitor}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	f.souls.AssertCalled(t, "SetConvertedTo", mock.Anything, record.ID, entity.LifecycleVisitor)
}

func TestBulkApply_UnknownOperation(t *testing.T) {
	f := newBulkFixture()

	_, err := f.coordinator.Apply(context.Background(), usecase.BulkOperation("export"), []string{"a"}, usecase.BulkParams{}, "admin")

	assert.True(t, usecase.IsValidation(err))
}

func TestBulkApply_CancelledContextMarksRemainingFailed(t *testing.T) {
	f := newBulkFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := f.coordinator.Apply(ctx, usecase.BulkComplete, []string{"a", "b"}, usecase.BulkParams{}, "admin")

	assert.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 2, report.FailureCount)
	assert.Contains(t, report.Errors[0].Message, "cancelled")
	f.followUps.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReportOutcome_EmptyBatchIsSuccess(t *testing.T) {
	report := usecase.Report{}
	assert.Equal(t, usecase.OutcomeSuccess, report.Outcome())
}
