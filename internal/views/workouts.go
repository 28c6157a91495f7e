package views

import (
	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// WorkoutRow is one workout card.
type WorkoutRow struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	Tier        Tier   `json:"tier"`
}

var workoutFields = struct {
	Name, Description, Type, Duration, Difficulty FieldSpec
}{
	Name:        Field("name"),
	Description: Field("description"),
	Type:        Field("type", "workout_type"),
	Duration:    Field("duration"),
	Difficulty:  Field("difficulty").Or("Not specified"),
}

// Workouts lists available workouts as cards.
var Workouts = View{
	Name:  "workouts",
	Label: "Workouts",
	Route: "/workouts",
	Path:  "workouts",
	mount: func(f listview.Fetcher, env Env) Mounted {
		return mount(workoutsDefinition(), f, workoutsPanel)
	},
}

func workoutsDefinition() listview.Definition[WorkoutRow] {
	return listview.Definition[WorkoutRow]{
		Name: "workouts",
		Path: "workouts",
		Map: func(e types.Entity, i int) WorkoutRow {
			tier := TierUnknown
			if v, ok := workoutFields.Difficulty.Resolve(e); ok {
				tier = ClassifyDifficulty(types.Text(v))
			}
			duration := workoutFields.Duration.Text(e)
			if duration != "" {
				duration += " minutes"
			}
			return WorkoutRow{
				Key:         e.Key(i),
				Name:        workoutFields.Name.Text(e),
				Description: workoutFields.Description.Text(e),
				Type:        workoutFields.Type.Text(e),
				Duration:    duration,
				Difficulty:  workoutFields.Difficulty.Text(e),
				Tier:        tier,
			}
		},
	}
}

func workoutsPanel(st types.State[WorkoutRow]) render.Panel {
	p := basePanel("workouts", "Workouts", "Browse and start a workout", render.EmptyState{
		Title: "No Workouts Available",
		Hint:  "Check back soon for new workout options.",
	}, st.Phase)

	p.Cards = make([]render.Card, 0, len(st.Items))
	for _, r := range st.Items {
		p.Cards = append(p.Cards, render.Card{
			Key:   r.Key,
			Title: r.Name,
			Body:  r.Description,
			Fields: []render.Field{
				{Label: "Type", Value: render.Cell{Text: r.Type, Style: "bg-info"}},
				{Label: "Duration", Value: render.Cell{Text: r.Duration}},
				{Label: "Difficulty", Value: render.Cell{Text: r.Difficulty, Style: r.Tier.Style(), Tag: string(r.Tier)}},
			},
		})
	}
	return p
}
