package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// planOrganize turns classified records into move actions. Files whose
// extension has no category are skipped silently. The destination directory
// is a category subdirectory of the scanned root.
func planOrganize(root string, records []FileRecord, table map[string]string) []PlannedAction {
	var plan []PlannedAction
	for _, rec := range records {
		category, ok := classify(rec.Ext, table)
		if !ok {
			continue
		}
		plan = append(plan, PlannedAction{
			Op:       ActionMove,
			Source:   rec.Path,
			DestDir:  filepath.Join(root, category),
			Category: category,
			Size:     rec.Size,
		})
	}
	return plan
}

// planDeletes turns a set of records into delete actions, preserving order.
func planDeletes(records []FileRecord) []PlannedAction {
	var plan []PlannedAction
	for _, rec := range records {
		plan = append(plan, PlannedAction{Op: ActionDelete, Source: rec.Path, Size: rec.Size})
	}
	return plan
}

// planDeduplicate marks every non-survivor record of every group for
// deletion, groups in first-seen order, members in discovery order.
func planDeduplicate(groups []DuplicateGroup) []PlannedAction {
	var plan []PlannedAction
	for _, g := range groups {
		plan = append(plan, planDeletes(g.Redundant())...)
	}
	return plan
}

// executePlan applies the actions in list order, recording one outcome per
// action and continuing past individual failures. There is no rollback of
// already-applied actions. Destination directories are created on demand;
// an existing directory is not an error.
func executePlan(plan []PlannedAction) ([]ActionOutcome, RunSummary) {
	outcomes := make([]ActionOutcome, 0, len(plan))
	var sum RunSummary

	for _, action := range plan {
		err := applyAction(action)
		outcomes = append(outcomes, ActionOutcome{Action: action, Err: err})
		if err != nil {
			sum.Failed++
			continue
		}
		sum.Succeeded++
		sum.Bytes += action.Size
	}
	return outcomes, sum
}

func applyAction(action PlannedAction) error {
	switch action.Op {
	case ActionMove:
		if err := os.MkdirAll(action.DestDir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", action.DestDir, err)
		}
		dest := filepath.Join(action.DestDir, filepath.Base(action.Source))
		if err := os.Rename(action.Source, dest); err != nil {
			return fmt.Errorf("moving %s: %w", action.Source, err)
		}
		return nil
	case ActionDelete:
		if err := os.Remove(action.Source); err != nil {
			return fmt.Errorf("deleting %s: %w", action.Source, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown action for %s", action.Source)
	}
}

// summarizePlan sizes a plan without executing it, for dry-run summaries.
func summarizePlan(plan []PlannedAction) RunSummary {
	var sum RunSummary
	for _, action := range plan {
		sum.Succeeded++
		sum.Bytes += action.Size
	}
	return sum
}
