package views

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// LeaderboardRow is one ranked leaderboard entry.
type LeaderboardRow struct {
	Key        string  `json:"key"`
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Initial    string  `json:"initial"`
	Score      string  `json:"score"`
	Activities string  `json:"activities"`
	scoreValue float64 // numeric score for rank_by=score
}

var leaderboardFields = struct {
	Name, Initial, Score, Activities FieldSpec
}{
	Name:       Field("user_name", "user").Or("Unknown"),
	Initial:    Field("user_name", "user").Or("U"),
	Score:      Field("score", "points").Or("0"),
	Activities: Field("activities_count", "activity_count"),
}

// Leaderboard lists ranked entries as a table. Rank is the 1-based position
// in the API response unless score ranking is configured.
var Leaderboard = View{
	Name:  "leaderboard",
	Label: "Leaderboard",
	Route: "/leaderboard",
	Path:  "leaderboards",
	mount: func(f listview.Fetcher, env Env) Mounted {
		return mount(leaderboardDefinition(env), f, leaderboardPanel)
	},
}

func leaderboardDefinition(env Env) listview.Definition[LeaderboardRow] {
	def := listview.Definition[LeaderboardRow]{
		Name: "leaderboard",
		Path: "leaderboards",
		Map: func(e types.Entity, i int) LeaderboardRow {
			score, _ := leaderboardFields.Score.Resolve(e)
			value, _ := types.Number(score)
			return LeaderboardRow{
				Key:        e.Key(i),
				Rank:       i + 1,
				Name:       leaderboardFields.Name.Text(e),
				Initial:    initial(leaderboardFields.Initial.Text(e)),
				Score:      leaderboardFields.Score.Text(e),
				Activities: activityCount(env, e),
				scoreValue: value,
			}
		},
	}
	if env.RankBy == types.RankByScore {
		def.Arrange = rankByScore
	}
	return def
}

// rankByScore sorts by score, highest first, keeping response order among
// ties, and renumbers ranks.
func rankByScore(rows []LeaderboardRow) []LeaderboardRow {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].scoreValue > rows[j].scoreValue
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func activityCount(env Env, e types.Entity) string {
	v, ok := leaderboardFields.Activities.Resolve(e)
	if !ok {
		return env.Printer.Sprintf("%d activities", 0)
	}
	if n, ok := types.Number(v); ok && n == math.Trunc(n) {
		return env.Printer.Sprintf("%d activities", int64(n))
	}
	return types.Text(v) + " activities"
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r))
}

func rankStyle(rank int) string {
	if rank >= 1 && rank <= 3 {
		return "rank-" + strconv.Itoa(rank)
	}
	return "rank-other"
}

func leaderboardPanel(st types.State[LeaderboardRow]) render.Panel {
	p := basePanel("leaderboard", "Leaderboard", "Top performers on OctoFit Tracker", render.EmptyState{
		Title: "No Leaderboard Data",
		Hint:  "Leaderboard will update as users complete activities.",
	}, st.Phase)

	table := &render.Table{Columns: []string{"Rank", "User", "Score", "Activities"}}
	for _, r := range st.Items {
		table.Rows = append(table.Rows, render.Row{
			Key: r.Key,
			Cells: []render.Cell{
				{Text: "#" + strconv.Itoa(r.Rank), Style: rankStyle(r.Rank)},
				{Text: r.Name, Avatar: r.Initial},
				{Text: r.Score},
				{Text: r.Activities, Style: "bg-success"},
			},
		})
	}
	p.Table = table
	return p
}
