package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shortcuts/internal/clipboard"
	"shortcuts/internal/config"
	"shortcuts/internal/logging"
	"shortcuts/internal/shortcuts"
	"shortcuts/internal/store"
	"shortcuts/internal/types"
)

// errSilentExit signals a non-zero exit whose explanation was already printed.
var errSilentExit = errors.New("exit")

type commandWiring struct {
	stdout          io.Writer
	stderr          io.Writer
	copyToClipboard func(text string) (clipboard.Method, error)
}

func defaultCommandWiring() commandWiring {
	return commandWiring{
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		copyToClipboard: clipboard.Copy,
	}
}

type rootOptions struct {
	configPath string
	backend    string
	storePath  string
	logLevel   string
}

func newRootCommand(wiring commandWiring) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "shortcuts",
		Short: "Inspect and customise keyboard shortcuts",
		Long: `shortcuts manages user overrides of the editor's keyboard shortcuts.

Overrides are stored as a JSON list of {"key", "command"} entries and merged
onto the built-in defaults.

Examples:
  shortcuts list
  shortcuts set moveCursorUp "alt+arrow up"
  shortcuts reset
  shortcuts export --clipboard`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.shortcuts/config.toml)")
	flags.StringVar(&opts.backend, "backend", "", "store backend: file, bbolt or memory")
	flags.StringVar(&opts.storePath, "path", "", "override store location")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCommand(opts),
		newSetCommand(opts),
		newResetCommand(opts),
		newExportCommand(opts, wiring.copyToClipboard),
		newConflictsCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

func (o *rootOptions) loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path := strings.TrimSpace(o.configPath); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, err
	}
	if o.backend != "" {
		cfg.Store.Backend = o.backend
	}
	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	return cfg.Effective()
}

// session is one command invocation's controller and the resources behind it.
type session struct {
	controller *shortcuts.Controller
	logger     logging.Logger
	closer     io.Closer
	sub        *shortcuts.Subscription
}

func (o *rootOptions) openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel())).Named("cli")
	st, closer, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened shortcut store", logging.F("backend", cfg.Store.Backend), logging.F("path", cfg.Store.Path))

	controller := shortcuts.NewController(st, nil, shortcuts.WithLogger(logger.Named("controller")))
	sub := controller.Subscribe(func(state types.ShortcutsState) {
		logger.Debug("shortcuts state", logging.F("status", state.Status()), logging.F("bindings", len(state.Bindings())))
	})
	return &session{controller: controller, logger: logger, closer: closer, sub: sub}, nil
}

func (s *session) Close() {
	s.sub.Unsubscribe()
	s.controller.Close()
	if err := s.closer.Close(); err != nil {
		s.logger.Warn("close shortcut store", logging.Err(err))
	}
}

// fetch loads the effective bindings, converting a failure state to an error.
func (s *session) fetch(ctx context.Context) (types.ShortcutsState, error) {
	state := s.controller.FetchShortcuts(ctx)
	return state, stateError(state)
}

func stateError(state types.ShortcutsState) error {
	if state.Status() == types.ShortcutsStatusFailure {
		return state.Err()
	}
	return nil
}

func withSession(opts *rootOptions, run func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := opts.openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return run(cmd, args, s)
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
