package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/devproxy"
	"github.com/spf13/cobra"
)

func (a *cli) proxyCmd() *cobra.Command {
	var (
		listen  string
		backend string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Serve /api/... on a local origin and forward it to the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}

			if backend == "" {
				backend = env.APIURL
			}

			if listen == "" {
				listen = os.Getenv(cn.EnvProxyListen)
			}

			if listen == "" {
				listen = cn.DefaultProxyListen
			}

			logger := a.getLogger(env.Debug)

			server, err := devproxy.New(devproxy.Config{Backend: backend, Timeout: timeout}, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()

				if err := server.Shutdown(); err != nil {
					logger.Errorf("Failed to stop dev proxy: %s", err.Error())
				}
			}()

			return server.Listen(listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default $MEALMIND_PROXY_LISTEN or "+cn.DefaultProxyListen+")")
	cmd.Flags().StringVarP(&backend, "backend", "b", "", "Backend origin (default: the API URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request backend timeout, 0 for none")

	return cmd
}
