package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

func TestClassifyDuty(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		state, reason := model.ClassifyDuty("available", "")
		gt.Value(t, state).Equal(types.DutyAvailable)
		gt.Value(t, reason).Equal(types.DutyReason(""))
	})

	t.Run("unavailable normalizes the reason", func(t *testing.T) {
		state, reason := model.ClassifyDuty("unavailable", "at_break")
		gt.Value(t, state).Equal(types.DutyUnavailable)
		gt.Value(t, reason).Equal(types.ReasonAtBreak)
	})

	t.Run("missing duty status lands in no-duty bucket", func(t *testing.T) {
		state, _ := model.ClassifyDuty("", "")
		gt.Value(t, state).Equal(types.DutyNone)
	})

	t.Run("unrecognized duty status lands in no-duty bucket", func(t *testing.T) {
		state, _ := model.ClassifyDuty("wrapping_up", "")
		gt.Value(t, state).Equal(types.DutyNone)
	})
}

func TestStatusLabel(t *testing.T) {
	t.Run("unavailable with reason", func(t *testing.T) {
		s := &model.EmployeeStatus{State: types.DutyUnavailable, Reason: types.ReasonAtBreak}
		gt.Value(t, s.StatusLabel()).Equal("Unavailable (At Break)")
	})

	t.Run("available with DND marker", func(t *testing.T) {
		s := &model.EmployeeStatus{State: types.DutyAvailable, DoNotDisturb: true}
		gt.Value(t, s.StatusLabel()).Equal("Available [DND]")
	})

	t.Run("no duty status", func(t *testing.T) {
		s := &model.EmployeeStatus{State: types.DutyNone}
		gt.Value(t, s.StatusLabel()).Equal("No Duty Status")
	})
}

func TestStatusSummaryAdd(t *testing.T) {
	var sum model.StatusSummary
	for i := 0; i < 8; i++ {
		sum.Add(types.DutyAvailable)
	}
	for i := 0; i < 40; i++ {
		sum.Add(types.DutyNone)
	}
	sum.Add(types.DutyUnavailable)
	sum.Add(types.DutyUnavailable)
	sum.Add(types.DutyUnknown)

	gt.Value(t, sum.Total).Equal(51)
	gt.Value(t, sum.Available).Equal(8)
	gt.Value(t, sum.Unavailable).Equal(2)
	gt.Value(t, sum.NoDutyStatus).Equal(40)
	gt.Value(t, sum.Unknown).Equal(1)
}

func TestFormatDutyDuration(t *testing.T) {
	gt.Value(t, model.FormatDutyDuration(0)).Equal("")
	gt.Value(t, model.FormatDutyDuration(-time.Hour)).Equal("")
	gt.Value(t, model.FormatDutyDuration(30*time.Minute)).Equal("30m")
	gt.Value(t, model.FormatDutyDuration(90*time.Minute)).Equal("1.5h")
	gt.Value(t, model.FormatDutyDuration(26*time.Hour)).Equal("1d 2.0h")
	gt.Value(t, model.FormatDutyDuration(49*time.Hour+30*time.Minute)).Equal("2d 1.5h")
}

func TestRosterStale(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	fresh := &model.Roster{Metadata: model.RosterMetadata{FetchedAt: now.Add(-23 * time.Hour)}}
	gt.Bool(t, fresh.Stale(now)).False()

	stale := &model.Roster{Metadata: model.RosterMetadata{FetchedAt: now.Add(-25 * time.Hour)}}
	gt.Bool(t, stale.Stale(now)).True()
	gt.Value(t, stale.Age(now)).Equal(25 * time.Hour)
}
