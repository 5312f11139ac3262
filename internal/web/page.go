package web

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Title is the page heading.
const Title = "ScoreBoard"

type buttonData struct {
	Label  string
	Action string
}

type panelData struct {
	Team    string
	Label   string
	Score   int
	Buttons []buttonData
}

type pageData struct {
	Title  string
	Panels []panelData
}

func (s *Server) pageData() pageData {
	scores := s.board.Snapshot()
	labels := map[scoreboard.Team]string{
		scoreboard.Home: s.teams.HomeLabel,
		scoreboard.Away: s.teams.AwayLabel,
	}

	data := pageData{Title: Title}
	for _, team := range scoreboard.Teams() {
		data.Panels = append(data.Panels, newPanelData(team, labels[team], scores.Score(team)))
	}
	return data
}

func newPanelData(team scoreboard.Team, label string, score int) panelData {
	if label == "" {
		label = team.Label()
	}
	p := panelData{Team: string(team), Label: label, Score: score}
	for _, inc := range scoreboard.Increments() {
		p.Buttons = append(p.Buttons, buttonData{
			Label:  inc.Label(),
			Action: "/score/" + string(team) + "/" + strconv.Itoa(int(inc)),
		})
	}
	return p
}

// renderPage executes the page template. Callers writing to a response
// should render into a buffer so a failed render sends no partial page.
func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
