package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/RogueFF/shiftboard/internal/cli/formatter"
	"github.com/RogueFF/shiftboard/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var date string
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live scoreboard that refreshes as entries are logged",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("watch needs an interactive terminal; use \"shiftboard board\" instead")
			}
			if interval < 500*time.Millisecond {
				return fmt.Errorf("--interval must be at least 500ms")
			}

			req := contract.NewScoreboardRequest()
			req.Date = date

			p := tea.NewProgram(newWatchModel(app, req, interval), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Production day (YYYY-MM-DD, default today)")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "How often to poll for new entries")

	return cmd
}

type watchKeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
}

type watchTickMsg time.Time

type watchBoardMsg struct {
	resp *contract.ScoreboardResponse
	err  error
}

type watchModel struct {
	app      *App
	req      contract.ScoreboardRequest
	interval time.Duration
	spinner  spinner.Model

	resp      *contract.ScoreboardResponse
	err       error
	updatedAt time.Time
}

func newWatchModel(app *App, req contract.ScoreboardRequest, interval time.Duration) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return watchModel{app: app, req: req, interval: interval, spinner: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch, m.tick())
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) fetch() tea.Msg {
	resp, err := m.app.Scoreboard.GetScoreboard(context.Background(), m.req)
	return watchBoardMsg{resp: resp, err: err}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, watchKeys.Refresh):
			return m, m.fetch
		}

	case watchTickMsg:
		return m, tea.Batch(m.fetch, m.tick())

	case watchBoardMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		// The data version only moves when an entry changes, so skip
		// re-rendering identical polls.
		if m.resp == nil || msg.resp.DataVersion != m.resp.DataVersion {
			m.resp = msg.resp
			m.updatedAt = time.Now()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n" + m.footer()
	}
	if m.resp == nil {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), formatter.Dim("loading scoreboard..."))
	}
	return formatter.FormatBoard(m.resp) + "\n" + m.footer()
}

func (m watchModel) footer() string {
	status := ""
	if !m.updatedAt.IsZero() {
		status = formatter.Dim("updated " + m.updatedAt.Format("3:04:05 PM"))
	}
	return fmt.Sprintf("%s %s  %s\n",
		m.spinner.View(),
		status,
		formatter.Dim("r refresh · q quit"))
}
