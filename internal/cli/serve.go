package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidekit/carousel/internal/server"
	"github.com/slidekit/carousel/pkg/deck/store"
	"github.com/slidekit/carousel/pkg/remote"
	"github.com/slidekit/carousel/pkg/show"
)

// shutdownTimeout bounds graceful HTTP shutdown on interrupt.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command exposing decks over the HTTP
// control API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		dir       string
		mongoURI  string
		mongoDB   string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve decks over the HTTP control API",
		Long: `Serve runs shows headlessly and exposes them over HTTP.

Decks come from the deck directory by default, or from MongoDB when
--mongo-uri is set. Playback snapshots stay in process unless
--redis-addr points at a Redis instance, in which case sibling server
instances and external pollers share them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			decks, err := c.openDeckStore(ctx, dir, mongoURI, mongoDB)
			if err != nil {
				return err
			}
			defer decks.Close()

			states, err := c.openStateStore(ctx, redisAddr)
			if err != nil {
				return err
			}
			defer states.Close()

			registry := show.NewRegistry(nil, c.Logger)
			srv := &http.Server{
				Addr:    addr,
				Handler: server.New(decks, registry, states, c.Logger).Handler(),
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			c.Logger.Info("control API listening", "addr", addr)

			select {
			case <-ctx.Done():
				c.Logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dir, "deck-dir", deckDir(), "directory containing stored decks")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI for deck storage")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "MongoDB database name")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for shared playback snapshots")
	return cmd
}

// openDeckStore selects the deck backend: MongoDB when a URI is given,
// otherwise the local deck directory.
func (c *CLI) openDeckStore(ctx context.Context, dir, mongoURI, mongoDB string) (store.Store, error) {
	if mongoURI != "" {
		c.Logger.Debug("using mongo deck store", "database", mongoDB)
		return store.NewMongoStore(ctx, mongoURI, mongoDB)
	}
	c.Logger.Debug("using file deck store", "dir", dir)
	return store.NewFileStore(dir)
}

// openStateStore selects the snapshot backend: Redis when an address is
// given, otherwise in process.
func (c *CLI) openStateStore(ctx context.Context, redisAddr string) (remote.StateStore, error) {
	if redisAddr != "" {
		c.Logger.Debug("using redis snapshot store", "addr", redisAddr)
		return remote.NewRedisStore(ctx, remote.RedisConfig{Addr: redisAddr})
	}
	return remote.NewMemoryStore(), nil
}
