package review_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/review"
	"shopfloor/internal/core/domain/model/route"
)

var (
	testNow   = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	testSuper = kernel.EmpNo("20007")
)

func newRouteWithSteps(t *testing.T, count int) (*route.RouteInstance, []*route.Step) {
	t.Helper()

	r, err := route.NewRouteInstance(kernel.NewUUID(), kernel.NewUUID(), 5, 5)
	require.NoError(t, err)

	var steps []*route.Step
	for seq := 1; seq <= count; seq++ {
		step, err := route.NewStep(route.StepConfig{
			ID:              kernel.NewUUID(),
			RouteInstanceID: r.ID(),
			Sequence:        seq,
			Code:            []string{"CUT", "WELD", "PAINT"}[seq-1],
			WorkCenterID:    kernel.NewUUID(),
			ProcessingMode:  route.BatchQuantity,
			TimeCaptureMode: route.TimeCaptureAutomated,
		})
		require.NoError(t, err)
		require.NoError(t, r.AddStep(step))
		steps = append(steps, step)
	}
	return r, steps
}

func Test_ComputeDiff_ChangedFieldsOnly(t *testing.T) {
	_, steps := newRouteWithSteps(t, 3)
	newWorkCenter := kernel.NewUUID()

	draft := []route.StepAdjustment{
		// WELD moves from sequence 2 to 3.
		{StepID: steps[1].ID(), Sequence: 3, WorkCenterID: steps[1].WorkCenterID()},
		// PAINT keeps its sequence but moves to another work center.
		{StepID: steps[2].ID(), Sequence: 3, WorkCenterID: newWorkCenter},
	}

	diffs := review.ComputeDiff(steps, draft)
	require.Len(t, diffs, 2)

	assert.Equal(t, "PAINT", diffs[0].StepCode)
	assert.Equal(t, review.FieldWorkCenter, diffs[0].Field)
	assert.Equal(t, steps[2].WorkCenterID().String(), diffs[0].Before)
	assert.Equal(t, newWorkCenter.String(), diffs[0].After)

	assert.Equal(t, "WELD", diffs[1].StepCode)
	assert.Equal(t, review.FieldSequence, diffs[1].Field)
	assert.Equal(t, "2", diffs[1].Before)
	assert.Equal(t, "3", diffs[1].After)
}

func Test_ComputeDiff_RevertedEditProducesNoRows(t *testing.T) {
	_, steps := newRouteWithSteps(t, 2)

	draft := []route.StepAdjustment{
		{StepID: steps[1].ID(), Sequence: 3, WorkCenterID: steps[1].WorkCenterID()},
	}
	require.Len(t, review.ComputeDiff(steps, draft), 1)

	// The reviewer changes their mind and puts the sequence back.
	draft[0].Sequence = steps[1].Sequence()
	assert.Empty(t, review.ComputeDiff(steps, draft))
}

func Test_ComputeDiff_UnknownStepSkipped(t *testing.T) {
	_, steps := newRouteWithSteps(t, 1)

	draft := []route.StepAdjustment{
		{StepID: kernel.NewUUID(), Sequence: 9, WorkCenterID: kernel.NewUUID()},
	}
	assert.Empty(t, review.ComputeDiff(steps, draft))
}

func newPendingRecord(t *testing.T, phase review.Phase) *review.ReviewRecord {
	t.Helper()
	r, err := review.NewReviewRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		phase, testNow)
	require.NoError(t, err)
	return r
}

func Test_NewAdjustmentReview_CarriesDraftAndDiffs(t *testing.T) {
	r, steps := newRouteWithSteps(t, 2)

	draft := []route.StepAdjustment{
		{StepID: steps[0].ID(), Sequence: 3, WorkCenterID: steps[0].WorkCenterID()},
	}
	diffs := review.ComputeDiff(steps, draft)
	require.Len(t, diffs, 1)

	record, err := review.NewAdjustmentReview(
		kernel.NewUUID(), kernel.NewUUID(), r.LineID(), r.ID(), draft, diffs, testNow)
	require.NoError(t, err)

	assert.True(t, record.IsPending())
	assert.Equal(t, draft, record.Draft())
	assert.Equal(t, diffs, record.Diffs())
}

func Test_ReviewRecord_ApproveDecidesOnce(t *testing.T) {
	record := newPendingRecord(t, review.SupervisorReview)
	require.True(t, record.IsPending())

	err := record.Approve(testSuper, kernel.RoleSupervisor, "looks right", testNow)
	require.NoError(t, err)

	assert.Equal(t, review.DecisionApproved, record.Decision())
	require.NotNil(t, record.Reviewer())
	assert.Equal(t, testSuper, *record.Reviewer())
	require.NotNil(t, record.DecidedUtc())

	err = record.Approve(testSuper, kernel.RoleSupervisor, "again", testNow)
	assert.ErrorIs(t, err, review.ErrAlreadyDecided)
}

func Test_ReviewRecord_SupervisorReviewRequiresReviewAuthority(t *testing.T) {
	record := newPendingRecord(t, review.SupervisorReview)

	err := record.Approve(kernel.EmpNo("10042"), kernel.RoleOperator, "", testNow)
	assert.ErrorIs(t, err, review.ErrReviewerRoleInsufficient)
	assert.True(t, record.IsPending())

	err = record.Approve(kernel.EmpNo("30001"), kernel.RoleAdministrator, "", testNow)
	assert.NoError(t, err)
}

func Test_ReviewRecord_RouteValidationAcceptsClerk(t *testing.T) {
	record := newPendingRecord(t, review.RouteValidation)

	err := record.Approve(kernel.EmpNo("40010"), kernel.RoleClerk, "", testNow)
	assert.NoError(t, err)
}

func Test_ReviewRecord_RejectRequiresReason(t *testing.T) {
	record := newPendingRecord(t, review.SupervisorReview)

	err := record.Reject(testSuper, kernel.RoleSupervisor, "", testNow)
	assert.ErrorContains(t, err, "rejectionReason")
	assert.True(t, record.IsPending())

	err = record.Reject(testSuper, kernel.RoleSupervisor, "scrap not accounted for", testNow)
	require.NoError(t, err)
	assert.Equal(t, review.DecisionRejected, record.Decision())
	assert.Equal(t, "scrap not accounted for", record.Note())
}
