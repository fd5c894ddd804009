// eventsub-tail connects to Twitch EventSub over websocket, registers the
// subscriptions named in its config file, and prints every delivered event
// as a JSON line. It is both a smoke test for the library and a handy way to
// watch a channel's event stream from a terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	twitch "github.com/MyriadMinds/twitch-api"
	"github.com/MyriadMinds/twitch-api/auth"
	"github.com/MyriadMinds/twitch-api/eventsub"
)

func main() {
	var configPath, envPath string

	rootCmd := &cobra.Command{
		Use:   "eventsub-tail",
		Short: "Tail a Twitch channel's EventSub stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, envPath)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "eventsub-tail.yaml", "config file")
	rootCmd.Flags().StringVarP(&envPath, "env", "e", ".env", "env file holding credentials")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, envPath string) error {
	// Credentials come from the environment so the config file stays
	// shareable. A missing env file is fine when the variables are
	// already exported.
	_ = godotenv.Load(envPath)

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	clientID := os.Getenv("TWITCH_CLIENT_ID")
	if clientID == "" {
		return fmt.Errorf("TWITCH_CLIENT_ID is not set")
	}
	token, err := resolveToken(ctx, clientID)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := eventsub.NewMetrics(registry)
	if cfg.Metrics.Enabled {
		go serveMetrics(logger, cfg.Metrics.Addr, registry)
	}

	client := twitch.New(clientID, token, twitch.WithLogger(logger))

	session, err := client.ConnectEventSub(ctx,
		eventsub.WithLogger(logger),
		eventsub.WithMetrics(metrics),
	)
	if err != nil {
		return fmt.Errorf("connecting to eventsub: %w", err)
	}
	logger.Info("connected", zap.String("session_id", session.ID()))

	condition := eventsub.Condition{BroadcasterID: cfg.Broadcaster, UserID: cfg.User}
	for _, name := range cfg.Subscriptions {
		kind, err := eventsub.ParseSubscriptionType(name)
		if err != nil {
			return err
		}
		sub, err := client.CreateSubscription(ctx, kind.Build(session.ID(), condition))
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", name, err)
		}
		logger.Info("subscribed", zap.String("type", sub.Type), zap.String("id", sub.ID))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-session.Events():
			if !ok {
				logger.Info("session ended")
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Warn("unprintable event", zap.Error(err))
				continue
			}
			fmt.Printf("%s %s\n", eventName(event), payload)
		}
	}
}

// resolveToken prefers a ready access token, falling back to a refresh-grant
// exchange when only a refresh token is available.
func resolveToken(ctx context.Context, clientID string) (string, error) {
	if token := os.Getenv("TWITCH_ACCESS_TOKEN"); token != "" {
		return token, nil
	}
	refresh := os.Getenv("TWITCH_REFRESH_TOKEN")
	secret := os.Getenv("TWITCH_CLIENT_SECRET")
	if refresh == "" || secret == "" {
		return "", fmt.Errorf("set TWITCH_ACCESS_TOKEN, or TWITCH_REFRESH_TOKEN and TWITCH_CLIENT_SECRET")
	}
	tokens, err := auth.Refresh(ctx, clientID, secret, refresh)
	if err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

func serveMetrics(logger *zap.Logger, addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics server stopped", zap.Error(err))
	}
}

// eventName reduces "*events.ChatMessage" to "ChatMessage".
func eventName(event any) string {
	name := fmt.Sprintf("%T", event)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
