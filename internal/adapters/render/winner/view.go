package winner

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/random-folder-picker/internal/application"
	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	// Favorite marks the current winner as liked.
	Favorite bool
	// Message is a one-line notice shown under the winner, e.g. the result
	// of the last action.
	Message string
	// Help is appended verbatim at the bottom.
	Help string
}

// View renders the session status as a block of styled lines.
func View(status application.SessionStatus, opts RenderOptions) string {
	return renderView(status, opts, newStyles())
}

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Random Folder Picker")}

	if status.Root == "" {
		lines = append(lines, s.empty.Render("No root folder chosen. Run `rfp choose` to pick one."))
		return joinWithHelp(lines, opts, s)
	}

	lines = append(lines, s.header.Render("root: "+status.Root))
	lines = append(lines, s.section.Render(renderWinner(status, opts, s)))
	lines = append(lines, s.section.Render(renderPool(status, s)))

	if opts.Message != "" {
		lines = append(lines, s.section.Render(s.detail.Render(opts.Message)))
	}

	return joinWithHelp(lines, opts, s)
}

func joinWithHelp(lines []string, opts RenderOptions, s styles) string {
	if opts.Help != "" {
		lines = append(lines, s.section.Render(s.help.Render(opts.Help)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderWinner(status application.SessionStatus, opts RenderOptions, s styles) string {
	if status.Winner == "" {
		return s.empty.Render("No winner yet.")
	}

	title := s.winner.Render(winnerTitle(status.Winner))
	if opts.Favorite {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.favorite.Render("♥"))
	}

	parts := []string{
		title,
		s.detail.Render(string(status.Winner)),
		imageLine(status.Image, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func winnerTitle(winner domain.CandidateID) string {
	return "Winner: " + filepath.Base(string(winner))
}

func imageLine(image *application.StatusImage, s styles) string {
	label := s.key.Render("image:")
	if image == nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.empty.Render("none"))
	}

	meta := fmt.Sprintf("%s (%s, %s)", image.Name, image.ContentType, humanize.Bytes(uint64(image.Size)))
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.detail.Render(meta))
}

func renderPool(status application.SessionStatus, s styles) string {
	if status.Exhausted() {
		return s.warning.Render("Pool exhausted. Relist to start over.")
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("remaining:"),
		" ",
		s.remaining.Render(remainingLabel(status.Remaining)),
	)
	if status.History > 0 {
		line += " " + s.header.Render(fmt.Sprintf("(%d shown before)", status.History))
	}

	return line
}

func remainingLabel(n int) string {
	if n == 1 {
		return "1 folder"
	}

	return humanize.Comma(int64(n)) + " folders"
}
