package views

import (
	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// TeamRow is one team card.
type TeamRow struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Created     string `json:"created"`
}

var teamFields = struct {
	Name, Description, Created FieldSpec
}{
	Name:        Field("name"),
	Description: Field("description"),
	Created:     Field("created_at", "date_created"),
}

// Teams lists teams as cards.
var Teams = View{
	Name:  "teams",
	Label: "Teams",
	Route: "/teams",
	Path:  "teams",
	mount: func(f listview.Fetcher, env Env) Mounted {
		return mount(teamsDefinition(env), f, teamsPanel)
	},
}

func teamsDefinition(env Env) listview.Definition[TeamRow] {
	return listview.Definition[TeamRow]{
		Name: "teams",
		Path: "teams",
		Map: func(e types.Entity, i int) TeamRow {
			created, _ := teamFields.Created.Resolve(e)
			return TeamRow{
				Key:         e.Key(i),
				Name:        teamFields.Name.Text(e),
				Description: teamFields.Description.Text(e),
				Created:     env.Dates.Format(created),
			}
		},
	}
}

func teamsPanel(st types.State[TeamRow]) render.Panel {
	p := basePanel("teams", "Teams", "", render.EmptyState{
		Title: "No Teams Found",
		Hint:  "Create a team to get started with team competitions.",
	}, st.Phase)

	p.Cards = make([]render.Card, 0, len(st.Items))
	for _, r := range st.Items {
		card := render.Card{Key: r.Key, Title: r.Name, Body: r.Description}
		if r.Created != "" {
			card.Note = "Created: " + r.Created
		}
		p.Cards = append(p.Cards, card)
	}
	return p
}
