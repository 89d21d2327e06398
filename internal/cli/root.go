package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"studydesk/internal/api"
	"studydesk/internal/config"
	"studydesk/internal/core/model"
	"studydesk/internal/session"
	"studydesk/internal/storage"
)

// AppName names the config directory and the single-instance lock.
const AppName = "StudyDesk"

// App is what every command runs against once flags are parsed.
type App struct {
	Name     string
	Settings model.Settings
	Client   *api.Client
	Session  *session.Store
	Logger   *slog.Logger
	Verbose  bool
}

// Options customises the root command. Zero values select the real
// settings file, session file and HTTP transport.
type Options struct {
	AppName      string
	Version      string
	RunGUI       func(cmd *cobra.Command, app *App) error
	LoadSettings func(appName string, flags *pflag.FlagSet) (model.Settings, error)
	Persister    session.Persister
	HTTPClient   *http.Client
	LogOutput    io.Writer
}

var errNotSignedIn = errors.New("not signed in; run `studydesk login` first")

type root struct {
	opts    Options
	app     *App
	verbose bool
}

// NewRootCommand builds the studydesk command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.AppName == "" {
		opts.AppName = AppName
	}
	if opts.LoadSettings == nil {
		opts.LoadSettings = config.Load
	}
	if opts.Persister == nil {
		opts.Persister = storage.NewSessionFile(opts.AppName)
	}

	r := &root{opts: opts}
	cmd := &cobra.Command{
		Use:   "studydesk",
		Short: "Pomodoro timer and study companion",
		Long: `studydesk runs a focus/break Pomodoro timer on the desktop or in the terminal,
and manages your tasks, notes and AI learning guides on the studydesk server.

Running studydesk without a command opens the desktop timer.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           opts.Version,
		PersistentPreRunE: r.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return r.saveCookies()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.opts.RunGUI == nil {
				return cmd.Help()
			}
			return r.opts.RunGUI(cmd, r.app)
		},
	}

	cmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String(config.FlagAPIURL, "", "studydesk server URL (overrides STUDYDESK_API_URL and settings)")

	if opts.RunGUI != nil {
		cmd.AddCommand(&cobra.Command{
			Use:   "gui",
			Short: "Open the desktop timer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.opts.RunGUI(cmd, r.app)
			},
		})
	}
	cmd.AddCommand(
		r.timerCommand(),
		r.loginCommand(),
		r.registerCommand(),
		r.logoutCommand(),
		r.whoamiCommand(),
		r.profileCommand(),
		r.resetPasswordCommand(),
		r.statsCommand(),
		r.tasksCommand(),
		r.notesCommand(),
		r.guidesCommand(),
	)
	return cmd
}

func (r *root) setup(cmd *cobra.Command, args []string) error {
	logOutput := r.opts.LogOutput
	if logOutput == nil {
		logOutput = cmd.ErrOrStderr()
	}
	logger := NewLogger(logOutput, r.verbose)
	slog.SetDefault(logger)

	settings, err := r.opts.LoadSettings(r.opts.AppName, cmd.Flags())
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	clientOpts := []api.Option{api.WithLogger(logger)}
	if r.opts.HTTPClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(r.opts.HTTPClient))
	}
	client, err := api.New(settings.APIURL, clientOpts...)
	if err != nil {
		return err
	}

	store, err := session.NewStore(r.opts.Persister, logger)
	if err != nil {
		logger.Warn("ignoring saved session", "error", err)
	}
	client.SetCookies(store.Cookies())

	r.app = &App{
		Name:     r.opts.AppName,
		Settings: settings,
		Client:   client,
		Session:  store,
		Logger:   logger,
		Verbose:  r.verbose,
	}
	logger.Debug("studydesk starting", "api_url", client.BaseURL(), "signed_in", store.LoggedIn())
	return nil
}

// setupSignedIn is setup for command groups that need an account.
func (r *root) setupSignedIn(cmd *cobra.Command, args []string) error {
	if err := r.setup(cmd, args); err != nil {
		return err
	}
	_, err := r.requireUser()
	return err
}

func (r *root) saveCookies() error {
	if r.app == nil || !r.app.Session.LoggedIn() {
		return nil
	}
	return r.app.Session.UpdateCookies(r.app.Client.Cookies())
}

// requireUser returns the signed-in user or errNotSignedIn.
func (r *root) requireUser() (*model.User, error) {
	user := r.app.Session.User()
	if user == nil {
		return nil, errNotSignedIn
	}
	return user, nil
}

// checkAuth forgets the local session when the server rejected it.
func (r *root) checkAuth(err error) error {
	if err == nil || !api.IsUnauthorized(err) {
		return err
	}
	if clearErr := r.app.Session.ClearUser(); clearErr != nil {
		r.app.Logger.Warn("clear session", "error", clearErr)
	}
	r.app.Client.ResetSession()
	return fmt.Errorf("session expired; run `studydesk login` again: %w", err)
}

// NewLogger returns the text logger used by every command.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
