package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

func samplePanel(phase types.Phase) Panel {
	return Panel{
		View:  "activities",
		Title: "Activities",
		Phase: phase,
		Empty: EmptyState{Title: "No Activities Found", Hint: "Start logging your activities to see them here."},
		Table: &Table{Columns: []string{"ID", "User"}},
	}
}

func TestWriteTextPhases(t *testing.T) {
	tests := []struct {
		name  string
		panel Panel
		want  []string
		not   []string
	}{
		{
			name:  "loading",
			panel: samplePanel(types.Loading{}),
			want:  []string{"Loading activities..."},
			not:   []string{"Total"},
		},
		{
			name:  "error",
			panel: samplePanel(types.Failed{Message: "http error: status 500"}),
			want:  []string{"Error loading activities", "http error: status 500"},
			not:   []string{"No Activities Found"},
		},
		{
			name:  "empty",
			panel: samplePanel(types.Loaded{}),
			want:  []string{"No Activities Found", "Start logging"},
			not:   []string{"Error"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, tt.panel))
			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.not {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteTextTable(t *testing.T) {
	p := samplePanel(types.Loaded{})
	p.Table.Rows = []Row{
		{Key: "1", Cells: []Cell{{Text: "1"}, {Text: "alice"}}},
		{Key: "2", Cells: []Cell{{Text: "2"}, {Text: "bob", Tag: "vip"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "ID  USER", lines[0])
	assert.Equal(t, "--  ----", lines[1])
	assert.Equal(t, "1   alice", lines[2])
	assert.Equal(t, "2   bob [vip]", lines[3])
	assert.Equal(t, "Total: 2 record(s)", lines[4])
}

func TestAvatarCell(t *testing.T) {
	p := samplePanel(types.Loaded{})
	p.Table.Rows = []Row{{Key: "1", Cells: []Cell{{Text: "1"}, {Text: "alice", Avatar: "A"}}}}

	var text bytes.Buffer
	require.NoError(t, WriteText(&text, p))
	assert.Contains(t, text.String(), "(A) alice")

	var html bytes.Buffer
	require.NoError(t, WritePanelHTML(&html, p))
	assert.Contains(t, html.String(), `<span class="avatar" aria-hidden="true">A</span> alice`)
}

func TestWriteTextCards(t *testing.T) {
	p := Panel{
		View:  "workouts",
		Title: "Workouts",
		Phase: types.Loaded{},
		Cards: []Card{{
			Key:   "1",
			Title: "Morning Run",
			Body:  "Easy pace",
			Fields: []Field{
				{Label: "Type", Value: Cell{Text: "cardio"}},
				{Label: "Difficulty", Value: Cell{Text: "Intermediate", Tag: "mid"}},
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p))
	out := buf.String()
	assert.Contains(t, out, "[Morning Run]")
	assert.Contains(t, out, "  Easy pace")
	assert.Contains(t, out, "Intermediate [mid]")
	assert.Contains(t, out, "Total: 1 record(s)")
}

func TestWritePanelHTML(t *testing.T) {
	p := samplePanel(types.Loaded{})
	p.Table.Rows = []Row{{Key: "42", Cells: []Cell{{Text: "42"}, {Text: "<alice>", Style: "bg-primary"}}}}

	var buf bytes.Buffer
	require.NoError(t, WritePanelHTML(&buf, p))
	out := buf.String()

	assert.Contains(t, out, `data-phase="loaded"`)
	assert.Contains(t, out, `<tr data-key="42">`)
	assert.Contains(t, out, "&lt;alice&gt;", "values are escaped")
	assert.Contains(t, out, `class="badge bg-primary"`)
}

func TestWritePanelHTMLError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePanelHTML(&buf, samplePanel(types.Failed{Message: "http error: status 500"})))

	assert.Contains(t, buf.String(), "Error loading activities")
	assert.Contains(t, buf.String(), "http error: status 500")
	assert.NotContains(t, buf.String(), "<table>")
}

func TestWriteHome(t *testing.T) {
	var buf bytes.Buffer
	page := Page{
		Brand: "OctoFit Tracker",
		Title: "Home",
		Nav:   []NavLink{{Href: "/", Label: "Home", Active: true}, {Href: "/activities", Label: "Activities"}},
	}
	require.NoError(t, WriteHome(&buf, page))
	out := buf.String()

	assert.Contains(t, out, "Welcome to OctoFit Tracker")
	assert.Contains(t, out, `<a href="/" class="active">Home</a>`)
	assert.Contains(t, out, `<a href="/activities">Activities</a>`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}
