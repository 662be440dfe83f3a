package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// ViewOptions filters the simplified-record listing
type ViewOptions struct {
	UserID  types.UserID
	Team    string
	Manager string
}

// ViewSimplified renders simplified records matching the filter as text.
// Filters are conjunctive; empty filters match everything.
func (u *UseCases) ViewSimplified(ctx context.Context, w io.Writer, opts ViewOptions) error {
	file, err := u.store.LoadSimplified(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load simplified users")
	}
	if len(file.Users) == 0 {
		return goerr.New("no simplified user records, run `dutyboard fetch` first")
	}

	var matched []*model.SimplifiedUser
	for _, user := range file.Users {
		if opts.UserID != "" && user.ID != opts.UserID {
			continue
		}
		if opts.Team != "" && !strings.EqualFold(user.Team, opts.Team) {
			continue
		}
		if opts.Manager != "" && !strings.EqualFold(user.Manager, opts.Manager) {
			continue
		}
		matched = append(matched, user)
	}

	if len(matched) == 0 {
		fmt.Fprintln(w, "No users found matching the criteria.")
		return nil
	}

	fmt.Fprintf(w, "User Information (%d users):\n", len(matched))
	fmt.Fprintln(w, strings.Repeat("=", 80))

	for _, user := range matched {
		fmt.Fprintf(w, "\n%s (%s)\n", user.DisplayName, user.Email)
		fmt.Fprintf(w, "  Phone: %s\n", user.PhoneNumber)
		fmt.Fprintf(w, "  Title: %s\n", user.JobTitle)
		fmt.Fprintf(w, "  Department: %s\n", user.Department)
		fmt.Fprintf(w, "  Timezone: %s\n", user.Timezone)
		fmt.Fprintf(w, "  License: %s\n", user.License)
		admin := "No"
		if user.IsAdmin {
			admin = "Yes"
		}
		fmt.Fprintf(w, "  Admin: %s\n", admin)

		for _, field := range []struct{ label, value string }{
			{"Role", user.Role},
			{"Focus Team", user.FocusTeam},
			{"Team", user.Team},
			{"Manager", user.Manager},
			{"Shift", user.Shift},
			{"Priority", user.PriorityLevel},
			{"Skills", user.Skills},
			{"Backup", user.BackupContact},
			{"Notes", user.Notes},
		} {
			if field.value != "" {
				fmt.Fprintf(w, "  %s: %s\n", field.label, field.value)
			}
		}
	}

	return nil
}

// ListTeams writes the distinct non-empty team names, sorted
func (u *UseCases) ListTeams(ctx context.Context, w io.Writer) error {
	return u.listDistinct(ctx, w, "Teams", func(user *model.SimplifiedUser) string {
		return user.Team
	})
}

// ListManagers writes the distinct non-empty manager names, sorted
func (u *UseCases) ListManagers(ctx context.Context, w io.Writer) error {
	return u.listDistinct(ctx, w, "Managers", func(user *model.SimplifiedUser) string {
		return user.Manager
	})
}

func (u *UseCases) listDistinct(ctx context.Context, w io.Writer, title string, key func(*model.SimplifiedUser) string) error {
	file, err := u.store.LoadSimplified(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load simplified users")
	}

	seen := map[string]bool{}
	for _, user := range file.Users {
		if v := key(user); v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	fmt.Fprintf(w, "%s:\n", title)
	for _, v := range values {
		fmt.Fprintf(w, "  - %s\n", v)
	}

	return nil
}
