package views

import (
	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// UserRow is one user profile.
type UserRow struct {
	Key       string `json:"key"`
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// missingName stands in for an absent first or last name.
const missingName = "-"

var userFields = struct {
	ID, Username, Email, FirstName, LastName FieldSpec
}{
	ID:        Field("id"),
	Username:  Field("username", "user"),
	Email:     Field("email"),
	FirstName: Field("first_name").Or(missingName),
	LastName:  Field("last_name").Or(missingName),
}

// Users lists user profiles as a table.
var Users = View{
	Name:  "users",
	Label: "Users",
	Route: "/users",
	Path:  "users",
	mount: func(f listview.Fetcher, env Env) Mounted {
		return mount(usersDefinition(), f, usersPanel)
	},
}

func usersDefinition() listview.Definition[UserRow] {
	return listview.Definition[UserRow]{
		Name: "users",
		Path: "users",
		Map: func(e types.Entity, i int) UserRow {
			return UserRow{
				Key:       e.Key(i),
				ID:        userFields.ID.Text(e),
				Username:  userFields.Username.Text(e),
				Email:     userFields.Email.Text(e),
				FirstName: userFields.FirstName.Text(e),
				LastName:  userFields.LastName.Text(e),
			}
		},
	}
}

func usersPanel(st types.State[UserRow]) render.Panel {
	p := basePanel("users", "Users & Profiles", "", render.EmptyState{
		Title: "No Users Found",
		Hint:  "Users will appear here once they join the platform.",
	}, st.Phase)

	table := &render.Table{Columns: []string{"ID", "Username", "Email", "First Name", "Last Name"}}
	for _, r := range st.Items {
		table.Rows = append(table.Rows, render.Row{
			Key: r.Key,
			Cells: []render.Cell{
				{Text: r.ID},
				{Text: r.Username, Style: "bg-success"},
				{Text: r.Email},
				{Text: r.FirstName},
				{Text: r.LastName},
			},
		})
	}
	p.Table = table
	return p
}
