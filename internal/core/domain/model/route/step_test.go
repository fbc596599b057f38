package route_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

var (
	testNow      = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	testOperator = kernel.EmpNo("10042")
	testSuper    = kernel.EmpNo("20007")
)

func newTestStep(t *testing.T, mutate func(*route.StepConfig)) *route.Step {
	t.Helper()

	cfg := route.StepConfig{
		ID:              kernel.NewUUID(),
		RouteInstanceID: kernel.NewUUID(),
		Sequence:        1,
		Code:            "ASSY",
		Name:            "Assembly",
		WorkCenterID:    kernel.NewUUID(),
		ProcessingMode:  route.BatchQuantity,
		TimeCaptureMode: route.TimeCaptureAutomated,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	step, err := route.NewStep(cfg)
	require.NoError(t, err)
	return step
}

func newUsageEntry(t *testing.T, partItemID kernel.UUID, lotBatch string, qty float64, uom string) *route.MaterialUsageEntry {
	t.Helper()
	e, err := route.NewMaterialUsageEntry(
		kernel.NewUUID(), partItemID, lotBatch, qty, uom, testOperator, testNow)
	require.NoError(t, err)
	return e
}

func newScrapEntry(t *testing.T) *route.ScrapEntry {
	t.Helper()
	e, err := route.NewScrapEntry(kernel.NewUUID(), 1, kernel.NewUUID(), testOperator, testNow)
	require.NoError(t, err)
	return e
}

func newSerialEntry(t *testing.T, serialNo string) *route.SerialCaptureEntry {
	t.Helper()
	e, err := route.NewSerialCaptureEntry(
		kernel.NewUUID(), serialNo, route.SerialCaptureAttributes{},
		route.ConditionGood, testOperator, testNow)
	require.NoError(t, err)
	return e
}

func newChecklistEntry(t *testing.T, templateID kernel.UUID, itemCode string, passed bool) *route.ChecklistEntry {
	t.Helper()
	note := ""
	if !passed {
		note = "torque out of tolerance"
	}
	e, err := route.NewChecklistEntry(
		kernel.NewUUID(), templateID, itemCode, passed, note, testOperator, testNow)
	require.NoError(t, err)
	return e
}

func Test_Step_Gate_AllRequirementFlagCombinations(t *testing.T) {
	templateID := kernel.NewUUID()

	for mask := 0; mask < 16; mask++ {
		reqUsage := mask&1 != 0
		reqScrap := mask&2 != 0
		reqSerial := mask&4 != 0
		reqChecklist := mask&8 != 0

		step := newTestStep(t, func(cfg *route.StepConfig) {
			cfg.RequiresUsageEntry = reqUsage
			cfg.RequiresScrapEntry = reqScrap
			cfg.RequiresSerialCapture = reqSerial
			cfg.RequiresChecklistCompletion = reqChecklist
			if reqChecklist {
				cfg.ChecklistTemplateID = &templateID
				cfg.ChecklistFailurePolicy = route.BlockCompletion
			}
		})
		require.NoError(t, step.ScanIn(testOperator, testNow))

		// With empty ledgers, exactly the required categories are unmet.
		result := step.EvaluateGate(testOperator)
		var want []route.RequirementCategory
		if reqUsage {
			want = append(want, route.RequirementUsage)
		}
		if reqScrap {
			want = append(want, route.RequirementScrap)
		}
		if reqSerial {
			want = append(want, route.RequirementSerial)
		}
		if reqChecklist {
			want = append(want, route.RequirementChecklist)
		}
		assert.Equal(t, want, result.Unmet, "mask %04b with empty ledgers", mask)

		// One entry per required ledger satisfies the gate.
		if reqUsage {
			require.NoError(t, step.AddUsage(newUsageEntry(t, kernel.NewUUID(), "LOT-1", 2, "EA")))
		}
		if reqScrap {
			require.NoError(t, step.AddScrap(newScrapEntry(t)))
		}
		if reqSerial {
			require.NoError(t, step.AddSerial(newSerialEntry(t, "SN-001")))
		}
		if reqChecklist {
			require.NoError(t, step.AddChecklistEntry(newChecklistEntry(t, templateID, "TORQUE", true)))
		}
		assert.True(t, step.CanComplete(testOperator), "mask %04b with filled ledgers", mask)
	}
}

func Test_Step_Gate_EmpNoAndBlockedOverlay(t *testing.T) {
	step := newTestStep(t, nil)
	require.NoError(t, step.ScanIn(testOperator, testNow))

	result := step.EvaluateGate(kernel.EmpNo(""))
	assert.Equal(t, []route.RequirementCategory{route.RequirementEmpNo}, result.Unmet)

	require.NoError(t, step.Block("waiting on fixture repair"))
	assert.Equal(t, route.StepInProgress, step.State(), "blocking keeps the execution state")

	result = step.EvaluateGate(testOperator)
	assert.Equal(t, []route.RequirementCategory{route.RequirementUnblocked}, result.Unmet)
	assert.ErrorContains(t, result.Err(), "BlockedReason")

	step.Unblock()
	assert.True(t, step.CanComplete(testOperator))
}

func Test_Step_Gate_ChecklistFailurePolicies(t *testing.T) {
	templateID := kernel.NewUUID()

	t.Run("block completion policy keeps gate shut on failed item", func(t *testing.T) {
		step := newTestStep(t, func(cfg *route.StepConfig) {
			cfg.RequiresChecklistCompletion = true
			cfg.ChecklistTemplateID = &templateID
			cfg.ChecklistFailurePolicy = route.BlockCompletion
		})
		require.NoError(t, step.ScanIn(testOperator, testNow))
		require.NoError(t, step.AddChecklistEntry(newChecklistEntry(t, templateID, "LEAK", false)))

		assert.False(t, step.CanComplete(testOperator))
	})

	t.Run("override policy passes once a supervisor signs off", func(t *testing.T) {
		step := newTestStep(t, func(cfg *route.StepConfig) {
			cfg.RequiresChecklistCompletion = true
			cfg.ChecklistTemplateID = &templateID
			cfg.ChecklistFailurePolicy = route.AllowWithSupervisorOverride
		})
		require.NoError(t, step.ScanIn(testOperator, testNow))

		failed := newChecklistEntry(t, templateID, "LEAK", false)
		require.NoError(t, step.AddChecklistEntry(failed))
		assert.False(t, step.CanComplete(testOperator))

		require.NoError(t, step.OverrideChecklistItem(failed.ID(), testSuper))
		assert.True(t, step.CanComplete(testOperator))
	})

	t.Run("override on a passed item is rejected", func(t *testing.T) {
		step := newTestStep(t, func(cfg *route.StepConfig) {
			cfg.RequiresChecklistCompletion = true
			cfg.ChecklistTemplateID = &templateID
			cfg.ChecklistFailurePolicy = route.AllowWithSupervisorOverride
		})
		passed := newChecklistEntry(t, templateID, "LEAK", true)
		require.NoError(t, step.AddChecklistEntry(passed))

		assert.Error(t, step.OverrideChecklistItem(passed.ID(), testSuper))
	})
}

func Test_Step_Usage_MergeOnCompositeKey(t *testing.T) {
	step := newTestStep(t, nil)
	partID := kernel.NewUUID()

	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "Lot-A", 2, "EA")))
	// Same part, same lot and uom up to case: accumulates instead of inserting.
	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "LOT-A", 2, "ea")))

	require.Len(t, step.Usage(), 1)
	assert.Equal(t, 4.0, step.Usage()[0].QuantityUsed())

	// Different lot inserts a second row.
	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "LOT-B", 1, "EA")))
	assert.Len(t, step.Usage(), 2)
}

func Test_Step_Usage_UpdateReindexesMergeKey(t *testing.T) {
	step := newTestStep(t, nil)
	partID := kernel.NewUUID()

	first := newUsageEntry(t, partID, "LOT-A", 2, "EA")
	require.NoError(t, step.AddUsage(first))
	require.NoError(t, step.UpdateUsage(first.ID(), partID, "LOT-B", 2, "EA", testOperator, testNow))

	// The entry now lives under the LOT-B key, so a LOT-B submission merges
	// into it and a LOT-A submission starts fresh.
	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "LOT-B", 3, "EA")))
	require.Len(t, step.Usage(), 1)
	assert.Equal(t, 5.0, step.Usage()[0].QuantityUsed())

	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "LOT-A", 1, "EA")))
	assert.Len(t, step.Usage(), 2)
}

func Test_Step_Usage_DeleteRequiresRequester(t *testing.T) {
	step := newTestStep(t, nil)
	entry := newUsageEntry(t, kernel.NewUUID(), "LOT-A", 2, "EA")
	require.NoError(t, step.AddUsage(entry))

	err := step.DeleteUsage(entry.ID(), kernel.EmpNo(""))
	assert.ErrorIs(t, err, kernel.ErrEmpNoIsRequired)

	require.NoError(t, step.DeleteUsage(entry.ID(), testOperator))
	assert.Empty(t, step.Usage())

	// Deleting again reports not found.
	assert.Error(t, step.DeleteUsage(entry.ID(), testOperator))
}

func Test_Step_Serial_DuplicateRejected(t *testing.T) {
	step := newTestStep(t, func(cfg *route.StepConfig) {
		cfg.RequiresSerialCapture = true
	})

	require.NoError(t, step.AddSerial(newSerialEntry(t, "SN-100")))
	err := step.AddSerial(newSerialEntry(t, "SN-100"))
	assert.ErrorIs(t, err, route.ErrDuplicateSerial)
	assert.Len(t, step.Serials(), 1)
}

func Test_Step_ScanIn_IsIdempotent(t *testing.T) {
	step := newTestStep(t, nil)

	require.NoError(t, step.ScanIn(testOperator, testNow))
	require.NotNil(t, step.ScanInUtc())
	first := *step.ScanInUtc()

	later := testNow.Add(15 * time.Minute)
	require.NoError(t, step.ScanIn(testOperator, later))
	assert.Equal(t, first, *step.ScanInUtc(), "re-entry keeps the original timestamp")
	assert.Equal(t, route.StepInProgress, step.State())

	require.NoError(t, step.ScanOut(testOperator, later))
	assert.Equal(t, route.StepInProgress, step.State(), "scan-out does not complete the step")
	assert.Equal(t, 15*time.Minute, step.Elapsed(later))
}

func Test_Step_CompletedStep_RejectsLedgerWrites(t *testing.T) {
	step := newTestStep(t, nil)
	require.NoError(t, step.ScanIn(testOperator, testNow))

	r, err := route.NewRouteInstance(step.RouteInstanceID(), kernel.NewUUID(), 5, 5)
	require.NoError(t, err)
	require.NoError(t, r.AddStep(step))
	require.NoError(t, r.RecordBatchProgress(step.ID(), 5, 0, testOperator))
	_, err = r.CompleteStep(step.ID(), testOperator, nil, testNow)
	require.NoError(t, err)

	assert.ErrorIs(t, step.AddUsage(newUsageEntry(t, kernel.NewUUID(), "", 1, "EA")), route.ErrStepAlreadyCompleted)
	assert.ErrorIs(t, step.AddScrap(newScrapEntry(t)), route.ErrStepAlreadyCompleted)
	assert.ErrorIs(t, step.AddSerial(newSerialEntry(t, "SN-1")), route.ErrStepAlreadyCompleted)
	assert.ErrorIs(t, step.ScanIn(testOperator, testNow), route.ErrStepAlreadyCompleted)
}

func Test_Step_ManualDuration_RejectedForAutomatedCapture(t *testing.T) {
	minutes := 25

	automated := newTestStep(t, nil)
	require.NoError(t, automated.ScanIn(testOperator, testNow))
	r, err := route.NewRouteInstance(automated.RouteInstanceID(), kernel.NewUUID(), 1, 1)
	require.NoError(t, err)
	require.NoError(t, r.AddStep(automated))
	require.NoError(t, r.RecordBatchProgress(automated.ID(), 1, 0, testOperator))

	_, err = r.CompleteStep(automated.ID(), testOperator, &minutes, testNow)
	assert.ErrorContains(t, err, "manualDurationMinutes")

	manual := newTestStep(t, func(cfg *route.StepConfig) {
		cfg.TimeCaptureMode = route.TimeCaptureManual
	})
	require.NoError(t, manual.ScanIn(testOperator, testNow))
	r2, err := route.NewRouteInstance(manual.RouteInstanceID(), kernel.NewUUID(), 1, 1)
	require.NoError(t, err)
	require.NoError(t, r2.AddStep(manual))
	require.NoError(t, r2.RecordBatchProgress(manual.ID(), 1, 0, testOperator))

	_, err = r2.CompleteStep(manual.ID(), testOperator, &minutes, testNow)
	require.NoError(t, err)
	require.NotNil(t, manual.ManualDurationMinutes())
	assert.Equal(t, 25, *manual.ManualDurationMinutes())
}

func Test_Step_Restore_RebuildsUsageMergeIndex(t *testing.T) {
	partID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	existing := newUsageEntry(t, partID, "LOT-A", 2, "EA")

	step, err := route.RestoreStep(
		route.StepConfig{
			ID:                 kernel.NewUUID(),
			RouteInstanceID:    routeID,
			Sequence:           1,
			Code:               "ASSY",
			WorkCenterID:       kernel.NewUUID(),
			ProcessingMode:     route.BatchQuantity,
			TimeCaptureMode:    route.TimeCaptureAutomated,
			RequiresUsageEntry: true,
		},
		route.RestoredStepState{
			State:     route.StepInProgress,
			ScanInUtc: &testNow,
			Usage:     []*route.MaterialUsageEntry{existing},
		})
	require.NoError(t, err)

	require.NoError(t, step.AddUsage(newUsageEntry(t, partID, "lot-a", 3, "ea")))
	require.Len(t, step.Usage(), 1, "restored entry participates in merging")
	assert.Equal(t, 5.0, step.Usage()[0].QuantityUsed())
}
