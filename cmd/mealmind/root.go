package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	sdk "github.com/LerianStudio/lib-mealmind-go"
	libErr "github.com/LerianStudio/lib-mealmind-go/error"
	"github.com/LerianStudio/lib-mealmind-go/mealmind"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"github.com/spf13/cobra"
)

const sessionExpiredMessage = `session expired; run "mealmind login"`

type cli struct {
	apiURL      string
	sessionFile string
	debug       bool

	out    io.Writer
	errOut io.Writer
	logger log.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	return newRootCmdWithLogger(out, errOut, nil)
}

func newRootCmdWithLogger(out, errOut io.Writer, logger log.Logger) *cobra.Command {
	app := &cli{out: out, errOut: errOut, logger: logger}

	rootCmd := &cobra.Command{
		Use:           "mealmind",
		Short:         "CLI client for the MealMind REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "MealMind API origin (default $MEALMIND_API_URL or http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&app.sessionFile, "session-file", "", "Session file (default $MEALMIND_SESSION_FILE or ~/.mealmind/session.json)")
	rootCmd.PersistentFlags().BoolVar(&app.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		app.signupCmd(),
		app.loginCmd(),
		app.logoutCmd(),
		app.meCmd(),
		app.statusCmd(),
		app.corsTestCmd(),
		app.profileCmd(),
		app.recommendationsCmd(),
		app.proxyCmd(),
	)

	return rootCmd
}

// env resolves the environment configuration with flag overrides applied
func (a *cli) env() (model.Config, error) {
	cfg, err := sdk.LoadFromEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}

	if a.sessionFile != "" {
		cfg.SessionFile = a.sessionFile
	}

	cfg.Debug = cfg.Debug || a.debug

	return cfg, nil
}

func (a *cli) getLogger(debug bool) log.Logger {
	if a.logger != nil {
		return a.logger
	}

	if debug {
		_ = os.Setenv("LOG_LEVEL", "debug")
	}

	a.logger = zap.InitializeLogger()

	return a.logger
}

func (a *cli) client() (*mealmind.Client, *session.FileStore, error) {
	env, err := a.env()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := mealmind.ConfigFromModel(env)
	if err != nil {
		return nil, nil, err
	}

	store := session.NewFileStore(env.SessionFile)

	client, err := mealmind.New(cfg,
		mealmind.WithStore(store),
		mealmind.WithLogger(a.getLogger(env.Debug)),
		mealmind.WithNavigator(func(string) {
			fmt.Fprintln(a.errOut, sessionExpiredMessage)
		}),
	)
	if err != nil {
		return nil, nil, err
	}

	return client, store, nil
}

// printResponse writes the status line and the body, indented when it is JSON
func (a *cli) printResponse(resp *model.Response) {
	if resp == nil {
		return
	}

	fmt.Fprintf(a.out, "HTTP %d\n", resp.StatusCode)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Body, "", "  "); err == nil {
		fmt.Fprintln(a.out, pretty.String())
		return
	}

	if len(resp.Body) > 0 {
		fmt.Fprintln(a.out, string(resp.Body))
	}
}

// finish prints whatever came back and returns the call error, if any,
// annotated with the message from the error body
func (a *cli) finish(resp *model.Response, err error) error {
	a.printResponse(resp)

	if err == nil || resp == nil {
		return err
	}

	if libErr.IsServerError(err) {
		fmt.Fprintln(a.errOut, "the backend failed to handle the request; check its logs")
	}

	var body model.ErrorResponse
	if resp.Decode(&body) == nil {
		if msg := body.Describe(); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
	}

	return err
}

// jsonData parses a --data flag value
func jsonData(raw string) (json.RawMessage, error) {
	if raw == "" {
		return json.RawMessage("{}"), nil
	}

	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("--data is not valid JSON")
	}

	return json.RawMessage(raw), nil
}
