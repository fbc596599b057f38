package review

import (
	"sort"
	"strconv"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/route"
)

// Diffable field names shown on review screens and kept in approval
// records.
const (
	FieldSequence   = "Sequence"
	FieldWorkCenter = "WorkCenter"
)

// StepDiff is one changed field of one step in an adjustment draft.
type StepDiff struct {
	StepID   kernel.UUID
	StepCode string
	Field    string
	Before   string
	After    string
}

// ComputeDiff compares a route's current steps against an adjustment
// draft and returns one row per changed field. A draft entry that matches
// the step's current values produces no rows, so reverting an edit makes
// its diff disappear. Steps the draft does not mention are skipped.
//
// ComputeDiff is a pure function of its inputs: it never mutates the
// route and can be re-run on every draft edit.
func ComputeDiff(steps []*route.Step, draft []route.StepAdjustment) []StepDiff {
	byID := make(map[string]*route.Step, len(steps))
	for _, s := range steps {
		byID[s.ID().String()] = s
	}

	var diffs []StepDiff
	for _, adj := range draft {
		step, ok := byID[adj.StepID.String()]
		if !ok {
			continue
		}

		if step.Sequence() != adj.Sequence {
			diffs = append(diffs, StepDiff{
				StepID:   step.ID(),
				StepCode: step.Code(),
				Field:    FieldSequence,
				Before:   strconv.Itoa(step.Sequence()),
				After:    strconv.Itoa(adj.Sequence),
			})
		}
		if !step.WorkCenterID().IsEqual(adj.WorkCenterID) {
			diffs = append(diffs, StepDiff{
				StepID:   step.ID(),
				StepCode: step.Code(),
				Field:    FieldWorkCenter,
				Before:   step.WorkCenterID().String(),
				After:    adj.WorkCenterID.String(),
			})
		}
	}

	sort.SliceStable(diffs, func(i, j int) bool {
		if diffs[i].StepCode != diffs[j].StepCode {
			return diffs[i].StepCode < diffs[j].StepCode
		}
		return diffs[i].Field < diffs[j].Field
	})
	return diffs
}
