package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	winnerrender "github.com/bnema/random-folder-picker/internal/adapters/render/winner"
	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type loopKeyMap struct {
	Pick     key.Binding
	Open     key.Binding
	Favorite key.Binding
	Back     key.Binding
	Relist   key.Binding
	Choose   key.Binding
	Quit     key.Binding
}

func newLoopKeyMap() loopKeyMap {
	return loopKeyMap{
		Pick:     key.NewBinding(key.WithKeys("enter", " ", "n"), key.WithHelp("enter", "pick again")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "like")),
		Back:     key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Relist:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "relist")),
		Choose:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "choose root")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k loopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Open, k.Favorite, k.Back, k.Relist, k.Choose, k.Quit}
}

func (k loopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type loopModel struct {
	ctx      context.Context
	app      *app
	keys     loopKeyMap
	help     help.Model
	message  string
	favorite bool
	choose   bool
	quitting bool
}

func newLoopModel(ctx context.Context, app *app, message string) loopModel {
	m := loopModel{
		ctx:     ctx,
		app:     app,
		keys:    newLoopKeyMap(),
		help:    help.New(),
		message: message,
	}
	m.refreshFavorite()

	return m
}

func (m loopModel) Init() tea.Cmd {
	return nil
}

func (m loopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m loopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controller := m.app.controller

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Choose):
		m.choose = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pick):
		winner, err := controller.PickAgain(m.ctx)
		switch {
		case errors.Is(err, domain.ErrPoolExhausted):
			m.message = "Pool exhausted. Press r to relist."
		case err != nil:
			m.message = err.Error()
		default:
			m.message = "Picked " + filepath.Base(string(winner))
		}
	case key.Matches(msg, m.keys.Back):
		previous, err := controller.Back(m.ctx)
		if err != nil {
			m.message = "Nothing to go back to."
			break
		}
		m.message = "Back to " + filepath.Base(string(previous))
	case key.Matches(msg, m.keys.Relist):
		if err := controller.Relist(m.ctx); err != nil {
			m.message = err.Error()
			break
		}
		m.message = fmt.Sprintf("Relisted, %d folders left.", controller.Status().Remaining)
	case key.Matches(msg, m.keys.Open):
		if err := controller.OpenWinner(m.ctx); err != nil {
			m.message = err.Error()
			break
		}
		m.message = "Opened in file explorer."
	case key.Matches(msg, m.keys.Favorite):
		winner, ok := controller.CurrentWinner()
		if !ok {
			m.message = domain.ErrNoWinner.Error()
			break
		}
		liked, err := m.app.favorites.Toggle(m.ctx, string(winner))
		if err != nil {
			m.message = err.Error()
			break
		}
		if liked {
			m.message = "Liked."
		} else {
			m.message = "Unliked."
		}
	default:
		return m, nil
	}

	m.refreshFavorite()
	return m, nil
}

func (m *loopModel) refreshFavorite() {
	m.favorite = false

	winner, ok := m.app.controller.CurrentWinner()
	if !ok {
		return
	}

	liked, err := m.app.favorites.Contains(m.ctx, string(winner))
	if err != nil {
		m.app.logger.Warn("load favorites", slog.Any("error", err))
		return
	}
	m.favorite = liked
}

func (m loopModel) View() string {
	if m.quitting || m.choose {
		return ""
	}

	return winnerrender.View(m.app.controller.Status(), winnerrender.RenderOptions{
		Favorite: m.favorite,
		Message:  m.message,
		Help:     m.help.View(m.keys),
	}) + "\n"
}

// runLoop restarts the interactive view after each folder choice, since the
// folder picker needs the terminal to itself.
func runLoop(ctx context.Context, app *app, in io.Reader, out io.Writer) error {
	message := ""
	for {
		p := tea.NewProgram(
			newLoopModel(ctx, app, message),
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(out),
		)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		result, ok := finalModel.(loopModel)
		if !ok {
			return fmt.Errorf("unexpected final loop model type %T", finalModel)
		}
		if !result.choose {
			return nil
		}

		message = ""
		if err := app.controller.ChooseFolder(ctx); err != nil {
			message = err.Error()
		}
	}
}

func newLoopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "loop",
		Short: "Pick folders interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app.controller.Start(ctx)

			return runLoop(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
