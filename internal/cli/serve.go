package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/api"
	"github.com/matzehuels/gatexray/pkg/errors"
	"github.com/matzehuels/gatexray/pkg/observability"
	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/store"
	"github.com/matzehuels/gatexray/pkg/store/mongo"
)

// Operator stores.
const (
	storeMemory = "memory"
	storeFile   = "file"
	storeMongo  = "mongo"
)

type serveOpts struct {
	addr     string
	store    string
	mongoURI string
	redis    string
	catalog  string
	noCache  bool
}

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render and operator API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyServeConfig(cmd, opts)
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&opts.store, "store", "", "operator store: memory, file or mongo")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection URI (implies --store mongo)")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the render cache")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "gate catalog file (.toml or .yaml)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	registerEnumCompletions(cmd, map[string][]string{
		"store": {storeMemory, storeFile, storeMongo},
	})
	return cmd
}

// applyServeConfig folds flags into the loaded config. Flags win.
func (c *CLI) applyServeConfig(cmd *cobra.Command, opts *serveOpts) {
	if opts.addr != "" {
		c.Config.Server.Addr = opts.addr
	}
	if opts.mongoURI != "" {
		c.Config.Server.Mongo.URI = opts.mongoURI
		if !cmd.Flags().Changed("store") {
			opts.store = storeMongo
		}
	}
	if opts.store != "" {
		c.Config.Server.Store = opts.store
	}
	if opts.redis != "" {
		c.Config.Cache.Backend = cacheBackendRedis
		c.Config.Cache.Redis.Addr = opts.redis
	}
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cat, err := c.loadCatalog(opts.catalog)
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	counters := observability.NewCounters()
	observability.Install(observability.Multi(observability.NewLogHooks(logger), counters))
	defer observability.Reset()

	srv := api.New(api.Config{
		Runner:  runner,
		Store:   st,
		Catalog: cat,
		Logger:  logger,
		Stats:   counters,
		Defaults: pipeline.Options{
			Style:   c.Config.Style,
			Seed:    c.Config.Seed,
			Metrics: c.Config.Metrics,
		},
	})

	printInfo("Listening on %s (store: %s, cache: %s)", c.Config.Server.Addr, c.Config.Server.Store, cacheLabel(c.Config, opts.noCache))
	return srv.ListenAndServe(ctx, c.Config.Server.Addr)
}

// newStore opens the configured operator store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	switch c.Config.Server.Store {
	case storeMemory:
		return store.NewMemory(), nil
	case storeMongo:
		if c.Config.Server.Mongo.URI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo store needs a URI (--mongo-uri or [server.mongo] uri)")
		}
		return mongo.New(ctx, c.Config.Server.Mongo)
	case storeFile, "":
		dir, err := configDir()
		if err != nil {
			return store.NewFileStore("")
		}
		return store.NewFileStore(filepath.Join(dir, "operators"))
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store %q (want memory, file or mongo)", c.Config.Server.Store)
}

func cacheLabel(cfg Config, noCache bool) string {
	if noCache {
		return cacheBackendNone
	}
	return cfg.Cache.Backend
}
