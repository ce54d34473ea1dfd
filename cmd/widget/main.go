package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/internal/widget"
	"github.com/soulnest/soulnest/internal/widget/plain"
	"github.com/soulnest/soulnest/internal/widget/terminal"
	"github.com/soulnest/soulnest/pkg/logger"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	transportHTTP      = "http"
	transportWebSocket = "websocket"
)

type options struct {
	url           string
	transport     string
	userID        string
	plain         bool
	logFile       string
	greetingDelay time.Duration
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "could not load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "soulnest-widget",
		Short:        "Chat with SoulNest from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.url, "url", config.GetWidgetAPIURL(), "chat endpoint")
	flags.StringVar(&opts.transport, "transport", transportHTTP, "http or websocket")
	flags.StringVar(&opts.userID, "user-id", config.DefaultWidgetUserID, "user id sent with every message")
	flags.BoolVar(&opts.plain, "plain", false, "line mode even on a terminal")
	flags.StringVar(&opts.logFile, "log-file", config.GetWidgetLogFile(), "log file, - for stderr")
	flags.DurationVar(&opts.greetingDelay, "greeting-delay", config.DefaultGreetingDelay, "delay before the greeting")

	return cmd
}

func run(ctx context.Context, opts *options, in io.Reader, out io.Writer) error {
	closeLog := setupLogging(opts.logFile)
	defer closeLog()

	transport, err := newTransport(opts.transport, opts.url)
	if err != nil {
		return err
	}
	logger.Info(logger.WIDGET, "Widget talking to %s over %s", opts.url, opts.transport)

	if f, ok := out.(*os.File); ok && !opts.plain && isatty.IsTerminal(f.Fd()) {
		return terminal.Run(ctx, transport, opts.greetingDelay, widget.WithUserID(opts.userID))
	}

	renderer := plain.NewRenderer(out, widget.DefaultTexts().Typing)
	client := widget.NewClient(transport, renderer, widget.WithUserID(opts.userID))
	err = plain.Run(ctx, in, client, opts.greetingDelay)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newTransport(kind, url string) (widget.Transport, error) {
	switch kind {
	case transportHTTP:
		return widget.NewHTTPTransport(url), nil
	case transportWebSocket:
		wsURL, err := widget.WebSocketURLFor(url)
		if err != nil {
			return nil, err
		}
		return widget.NewWebSocketTransport(wsURL), nil
	default:
		return nil, errors.Errorf("unknown transport %q", kind)
	}
}

// setupLogging sends logs to a rotated file so they do not draw over the
// chat.
func setupLogging(path string) func() {
	if path == "-" {
		logger.SetOutput(os.Stderr)
		return func() {}
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	logger.SetOutput(lj)
	return func() {
		logger.SetOutput(io.Discard)
		_ = lj.Close()
	}
}
