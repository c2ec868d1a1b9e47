package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ytguide/pkg/config"
	"ytguide/pkg/errors"
	"ytguide/pkg/guide"
	"ytguide/pkg/logger"
	"ytguide/pkg/web"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = NewCommand(
	"serve",
	"Serve the guide as a web page",
	`Serve the guide as a single static page with copy buttons, plus
/steps.json, /script/`+guide.ScriptName+` and /healthz. Stops on Ctrl-C.`,
).WithExample(`  ytguide serve
  ytguide serve --addr 0.0.0.0:8080`).
	WithArgsValidation(0, 0).
	WithRun(runServe).
	Build()

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Serve.Address
	}

	srv, err := web.New(guide.Page(), guide.Script(), logger.GetLogger())
	if err != nil {
		return errors.NewWithError(errors.ExitCodeServer, errors.ErrMsgRenderFailed, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s (Ctrl-C to stop)\n", guide.Title, addr)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return errors.NewWithError(errors.ExitCodeServer, errors.ErrMsgServeFailed, err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, "+config.DefaultServeAddress+")")
}
