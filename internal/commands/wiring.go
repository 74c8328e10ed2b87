package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cleared-dev/boardbrief/internal/agent"
	"github.com/cleared-dev/boardbrief/internal/config"
	"github.com/cleared-dev/boardbrief/internal/llm"
	"github.com/cleared-dev/boardbrief/internal/metrics"
	"github.com/cleared-dev/boardbrief/internal/source"
)

// env is everything a command needs after config and secrets are loaded.
type env struct {
	cfg     *config.Config
	secrets config.Secrets
	log     *slog.Logger
	source  source.Source
	engine  *metrics.Engine
}

func loadEnv(opts *options) (*env, error) {
	log := newLogger(opts.logOutput, opts.verbose)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", opts.configPath, err)
	}

	secrets, err := config.LoadSecrets(opts.envFile)
	if err != nil {
		return nil, err
	}

	src, err := newSource(cfg, secrets, filepath.Dir(opts.configPath), log)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		secrets: secrets,
		log:     log,
		source:  src,
		engine:  metrics.NewEngine(cfg.Rules(), opts.clock),
	}, nil
}

// newSource builds the configured board source. Relative CSV directories
// are resolved against the config file's directory.
func newSource(cfg *config.Config, secrets config.Secrets, baseDir string, log *slog.Logger) (source.Source, error) {
	switch cfg.Source.Kind {
	case config.SourceCSV:
		dir := cfg.Source.CSVDir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		return source.NewCSVSource(dir), nil
	default:
		if secrets.MondayAPIKey == "" {
			return nil, fmt.Errorf("%s is not set", config.EnvMondayAPIKey)
		}
		return source.NewMondayClient(cfg.Monday.APIURL, secrets.MondayAPIKey, log), nil
	}
}

func newAgent(opts *options, e *env) (*agent.Agent, error) {
	completer := opts.newCompleter(e.cfg, e.secrets, e.log)
	return agent.New(agent.Config{
		Source:     e.source,
		Classifier: llm.NewClassifier(completer, e.log),
		Summarizer: llm.NewSummarizer(completer),
		Engine:     e.engine,
		Boards: agent.Boards{
			Deals:      e.cfg.Monday.DealsBoardID,
			WorkOrders: e.cfg.Monday.WorkOrdersBoardID,
		},
		Clock:  opts.clock,
		Logger: e.log,
	})
}
