package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/observability"
	"github.com/bnema/random-folder-picker/internal/ports"
)

var errNoChooser = errors.New("no directory chooser configured")

// Controller owns the process-wide session and exposes the operations a host
// UI binds to. It is not safe for concurrent use; every call runs to
// completion before the next one starts.
type Controller struct {
	sampling *SamplingService
	media    *MediaResolver
	lister   ports.DirectoryLister
	chooser  ports.DirectoryChooser
	explorer ports.Explorer
	logger   *slog.Logger

	session domain.Session
	image   *domain.Image
	history []domain.CandidateID
}

func NewController(
	sampling *SamplingService,
	media *MediaResolver,
	lister ports.DirectoryLister,
	chooser ports.DirectoryChooser,
	explorer ports.Explorer,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sampling: sampling,
		media:    media,
		lister:   lister,
		chooser:  chooser,
		explorer: explorer,
		logger:   observability.OrDiscard(logger),
		session:  domain.NewSession(""),
	}
}

// Restore loads the persisted session without listing or drawing.
func (c *Controller) Restore(ctx context.Context) bool {
	session, ok := c.sampling.Restore(ctx)
	c.session = session
	c.image = nil
	c.history = nil

	return ok
}

// Start resumes the persisted session: it performs the draw owed by a
// restored pool, then lists the root directory. An exhausted session is left
// alone until Relist.
func (c *Controller) Start(ctx context.Context) {
	if !c.Restore(ctx) {
		return
	}

	c.drawIfPending(ctx)
	if c.session.Exhausted() {
		return
	}
	c.list(ctx)
	c.drawIfPending(ctx)
}

// ChooseFolder asks the directory chooser for a new root and starts a session
// on it.
func (c *Controller) ChooseFolder(ctx context.Context) error {
	if c.chooser == nil {
		return errNoChooser
	}

	root, err := c.chooser.ChooseDirectory(ctx)
	if err != nil {
		c.logger.Info("directory not chosen", slog.Any("error", err))
		return fmt.Errorf("choose directory: %w", err)
	}

	return c.SetRoot(ctx, root)
}

// SetRoot replaces the session with one on root, lists it and draws the
// first winner.
func (c *Controller) SetRoot(ctx context.Context, root string) error {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" || !filepath.IsAbs(trimmed) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRoot, root)
	}

	c.sampling.Begin(ctx, &c.session, filepath.Clean(trimmed))
	c.image = nil
	c.history = nil

	c.list(ctx)
	c.drawIfPending(ctx)

	return nil
}

// Relist re-queries the root directory. It is the only way out of the
// exhausted state.
func (c *Controller) Relist(ctx context.Context) error {
	if err := c.session.Relist(); err != nil {
		return err
	}

	c.list(ctx)
	c.drawIfPending(ctx)

	return nil
}

// PickAgain draws the next winner. It returns domain.ErrPoolExhausted when
// the pool is empty, leaving the current winner in place and clearing its
// image.
func (c *Controller) PickAgain(ctx context.Context) (domain.CandidateID, error) {
	return c.pick(ctx)
}

// Back shows the previously displayed winner again. Drawn winners never
// return to the pool.
func (c *Controller) Back(ctx context.Context) (domain.CandidateID, error) {
	if len(c.history) == 0 {
		return "", domain.ErrNoHistory
	}

	previous := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.session.Winner = previous
	c.resolveImage(ctx, previous)

	return previous, nil
}

// OpenWinner reveals the current winner in the system file explorer.
func (c *Controller) OpenWinner(ctx context.Context) error {
	if c.session.Winner == "" {
		return domain.ErrNoWinner
	}
	if c.explorer == nil {
		return nil
	}

	if err := c.explorer.Open(ctx, string(c.session.Winner)); err != nil {
		c.logger.Warn("open winner", slog.String("winner", string(c.session.Winner)), slog.Any("error", err))
	}

	return nil
}

func (c *Controller) CurrentWinner() (domain.CandidateID, bool) {
	return c.session.Winner, c.session.Winner != ""
}

func (c *Controller) CurrentImage() (domain.Image, bool) {
	if c.image == nil {
		return domain.Image{}, false
	}

	return *c.image, true
}

func (c *Controller) PoolExhausted() bool {
	return c.session.Exhausted()
}

func (c *Controller) Status() SessionStatus {
	status := SessionStatus{
		SessionID: c.session.ID,
		Root:      c.session.Root,
		State:     c.session.State,
		Remaining: c.session.Pool.Len(),
		Winner:    c.session.Winner,
		History:   len(c.history),
	}
	if c.image != nil {
		status.Image = &StatusImage{
			Name:        c.image.Name,
			Path:        c.image.Path,
			ContentType: c.image.ContentType,
			Size:        c.image.Size(),
		}
	}

	return status
}

func (c *Controller) pick(ctx context.Context) (domain.CandidateID, error) {
	previous := c.session.Winner

	winner, err := c.sampling.Draw(ctx, &c.session)
	if err != nil {
		if errors.Is(err, domain.ErrPoolExhausted) {
			c.image = nil
		}
		return "", err
	}

	if previous != "" {
		c.history = append(c.history, previous)
	}
	c.resolveImage(ctx, winner)

	return winner, nil
}

func (c *Controller) drawIfPending(ctx context.Context) {
	if !c.session.TakePendingDraw() {
		return
	}

	_, _ = c.pick(ctx)
}

func (c *Controller) list(ctx context.Context) {
	entries, err := c.lister.List(ctx, c.session.Root)
	if err != nil {
		c.logger.Warn("list root directory", slog.String("root", c.session.Root), slog.Any("error", err))
		return
	}

	if _, err := c.sampling.Ingest(ctx, &c.session, entries); err != nil {
		c.logger.Warn("ingest listing", slog.String("root", c.session.Root), slog.Any("error", err))
	}
}

func (c *Controller) resolveImage(ctx context.Context, winner domain.CandidateID) {
	image, err := c.media.Resolve(ctx, string(winner))
	if err != nil {
		c.image = nil
		return
	}

	c.image = &image
}
