package views

import (
	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// ActivityRow is one logged activity.
type ActivityRow struct {
	Key      string `json:"key"`
	ID       string `json:"id"`
	User     string `json:"user"`
	Type     string `json:"activity_type"`
	Duration string `json:"duration"`
	Date     string `json:"date"`
}

var activityFields = struct {
	ID, User, Type, Duration, Date FieldSpec
}{
	ID:       Field("id"),
	User:     Field("user"),
	Type:     Field("activity_type"),
	Duration: Field("duration"),
	Date:     Field("date"),
}

// Activities lists logged activities as a table.
var Activities = View{
	Name:  "activities",
	Label: "Activities",
	Route: "/activities",
	Path:  "activities",
	mount: func(f listview.Fetcher, env Env) Mounted {
		return mount(activitiesDefinition(env), f, activitiesPanel)
	},
}

func activitiesDefinition(env Env) listview.Definition[ActivityRow] {
	return listview.Definition[ActivityRow]{
		Name: "activities",
		Path: "activities",
		Map: func(e types.Entity, i int) ActivityRow {
			date, _ := activityFields.Date.Resolve(e)
			return ActivityRow{
				Key:      e.Key(i),
				ID:       activityFields.ID.Text(e),
				User:     activityFields.User.Text(e),
				Type:     activityFields.Type.Text(e),
				Duration: activityFields.Duration.Text(e),
				Date:     env.Dates.Format(date),
			}
		},
	}
}

func activitiesPanel(st types.State[ActivityRow]) render.Panel {
	p := basePanel("activities", "Activities", "", render.EmptyState{
		Title: "No Activities Found",
		Hint:  "Start logging your activities to see them here.",
	}, st.Phase)

	table := &render.Table{Columns: []string{"ID", "User", "Activity Type", "Duration", "Date"}}
	for _, r := range st.Items {
		table.Rows = append(table.Rows, render.Row{
			Key: r.Key,
			Cells: []render.Cell{
				{Text: r.ID},
				{Text: r.User},
				{Text: r.Type, Style: "bg-primary"},
				{Text: r.Duration},
				{Text: r.Date},
			},
		})
	}
	p.Table = table
	return p
}
