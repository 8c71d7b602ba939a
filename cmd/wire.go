package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/random-folder-picker/internal/adapters/fs/local"
	"github.com/bnema/random-folder-picker/internal/adapters/host/dialog"
	"github.com/bnema/random-folder-picker/internal/adapters/host/explorer"
	winnerrender "github.com/bnema/random-folder-picker/internal/adapters/render/winner"
	tomlrepo "github.com/bnema/random-folder-picker/internal/adapters/repo/toml"
	filestate "github.com/bnema/random-folder-picker/internal/adapters/state/file"
	"github.com/bnema/random-folder-picker/internal/application"
	"github.com/bnema/random-folder-picker/internal/config"
	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/observability"
	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/spf13/viper"
)

const serviceName = "rfp"

type app struct {
	logger     *slog.Logger
	controller *application.Controller
	favorites  *application.FavoritesService
	renderer   func(application.SessionStatus, winnerrender.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(os.Stderr, serviceName, cfg.GetString(config.KeyLogLevel), cfg.GetString(config.KeyLogFormat))
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	mode, err := domain.ParseDrawMode(cfg.GetString(config.KeyDrawMode))
	if err != nil {
		return nil, fmt.Errorf("wire sampling: %w", err)
	}

	maxSize, err := config.MediaMaxSize(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire media reader: %w", err)
	}

	store, err := wireStateStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	favoritesRepo, err := tomlrepo.NewFavoritesRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire favorites repository: %w", err)
	}

	sampling := application.NewSamplingService(store, ports.SystemRandom{}, mode, logger)
	media := application.NewMediaResolver(local.NewReader(maxSize), logger)

	return &app{
		logger: logger,
		controller: application.NewController(
			sampling,
			media,
			local.Lister{},
			dialog.NewChooser(""),
			explorer.NewExplorer(),
			logger,
		),
		favorites: application.NewFavoritesService(favoritesRepo, ports.SystemClock{}),
		renderer:  winnerrender.Render,
	}, nil
}

func wireStateStore(cfg *viper.Viper) (ports.StateStore, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.GetString(config.KeyStateBackend)))

	switch backend {
	case "", config.StateBackendTOML:
		return tomlrepo.NewStateStore(cfg)
	case config.StateBackendFile:
		root := cfg.GetString(config.KeyStatePath)
		if root == "" {
			dir, err := config.Dir()
			if err != nil {
				return nil, err
			}
			root = filepath.Join(dir, "state")
		}
		return filestate.NewStore(root), nil
	default:
		return nil, fmt.Errorf("unsupported state backend %q", backend)
	}
}
