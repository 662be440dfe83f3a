package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

func TestMergeSimplified(t *testing.T) {
	t.Run("new users get empty custom fields", func(t *testing.T) {
		fetched := []*model.User{
			{ID: "u1", DisplayName: "Alice Smith", Emails: []string{"alice@example.com"}},
		}

		merged, stats := model.MergeSimplified(fetched, nil)
		gt.Array(t, merged).Length(1)
		gt.Value(t, stats.New).Equal(1)
		gt.Value(t, stats.Updated).Equal(0)
		gt.Value(t, stats.Retained).Equal(0)

		gt.Value(t, merged[0].ID).Equal(types.UserID("u1"))
		gt.Value(t, merged[0].Email).Equal("alice@example.com")
		gt.Value(t, merged[0].Team).Equal("")
		gt.Value(t, merged[0].Role).Equal("")
	})

	t.Run("custom fields survive a refresh", func(t *testing.T) {
		existing := []*model.SimplifiedUser{
			{
				ID:          "u1",
				DisplayName: "Old Name",
				JobTitle:    "Old Title",
				Team:        "Network Ops",
				Manager:     "Bob Jones",
				Shift:       "night",
				Notes:       "backup pager holder",
			},
		}
		fetched := []*model.User{
			{ID: "u1", DisplayName: "New Name", JobTitle: "New Title"},
		}

		merged, stats := model.MergeSimplified(fetched, existing)
		gt.Array(t, merged).Length(1)
		gt.Value(t, stats.Updated).Equal(1)

		// standard fields come from the API
		gt.Value(t, merged[0].DisplayName).Equal("New Name")
		gt.Value(t, merged[0].JobTitle).Equal("New Title")

		// custom fields stay
		gt.Value(t, merged[0].Team).Equal("Network Ops")
		gt.Value(t, merged[0].Manager).Equal("Bob Jones")
		gt.Value(t, merged[0].Shift).Equal("night")
		gt.Value(t, merged[0].Notes).Equal("backup pager holder")
	})

	t.Run("stale entries are retained after fetched set in prior order", func(t *testing.T) {
		existing := []*model.SimplifiedUser{
			{ID: "gone-2", DisplayName: "Second Departed"},
			{ID: "u1", DisplayName: "Alice"},
			{ID: "gone-1", DisplayName: "First Departed"},
		}
		fetched := []*model.User{
			{ID: "u1", DisplayName: "Alice"},
			{ID: "u2", DisplayName: "Carol"},
		}

		merged, stats := model.MergeSimplified(fetched, existing)
		gt.Array(t, merged).Length(4)
		gt.Value(t, stats.New).Equal(1)
		gt.Value(t, stats.Updated).Equal(1)
		gt.Value(t, stats.Retained).Equal(2)

		// fetched users first, retained stragglers after in their prior order
		gt.Value(t, merged[0].ID).Equal(types.UserID("u1"))
		gt.Value(t, merged[1].ID).Equal(types.UserID("u2"))
		gt.Value(t, merged[2].ID).Equal(types.UserID("gone-2"))
		gt.Value(t, merged[3].ID).Equal(types.UserID("gone-1"))
	})

	t.Run("merge is idempotent over repeated fetches", func(t *testing.T) {
		fetched := []*model.User{
			{ID: "u1", DisplayName: "Alice", Emails: []string{"alice@example.com"}},
			{ID: "u2", DisplayName: "Carol"},
		}

		first, _ := model.MergeSimplified(fetched, nil)
		first[0].Team = "Core"

		second, stats := model.MergeSimplified(fetched, first)
		gt.Array(t, second).Length(2)
		gt.Value(t, stats.New).Equal(0)
		gt.Value(t, stats.Updated).Equal(2)
		gt.Value(t, stats.Retained).Equal(0)
		gt.Value(t, second[0].Team).Equal("Core")

		third, _ := model.MergeSimplified(fetched, second)
		gt.Value(t, third[0].Team).Equal("Core")
		gt.Array(t, third).Length(2)
	})

	t.Run("empty custom field does not wipe an existing value", func(t *testing.T) {
		existing := []*model.SimplifiedUser{
			{ID: "u1", Team: "Core", PriorityLevel: "p1"},
		}
		fetched := []*model.User{{ID: "u1", DisplayName: "Alice"}}

		merged, _ := model.MergeSimplified(fetched, existing)
		gt.Value(t, merged[0].Team).Equal("Core")
		gt.Value(t, merged[0].PriorityLevel).Equal("p1")
	})
}

func TestCSVRecord(t *testing.T) {
	u := &model.SimplifiedUser{
		ID:          "u1",
		DisplayName: "Alice Smith",
		Email:       "alice@example.com",
		IsAdmin:     true,
		Team:        "Core",
	}

	header := model.CSVHeader()
	record := u.CSVRecord()
	gt.Value(t, len(record)).Equal(len(header))
	gt.Value(t, record[0]).Equal("u1")
	gt.Value(t, record[1]).Equal("Alice Smith")
	gt.Value(t, record[10]).Equal("true")
	gt.Value(t, record[14]).Equal("Core")
}
