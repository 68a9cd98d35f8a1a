package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/eringen/pressfront"
)

var (
	// cfgFile is an optional YAML/TOML/JSON file with the same keys as the
	// environment variables, lowercased (wp_api_url, next_public_site_url, ...).
	cfgFile string

	v = viper.New()

	rootCmd = &cobra.Command{
		Use:   "pressfront",
		Short: "A server-rendered frontend for a headless WordPress content API",
		Long: `pressfront renders post listings, post pages, category and tag archives,
an RSS feed and a sitemap from a WordPress-style REST API.

Configuration comes from flags, environment variables (a .env file is loaded
if present) or --config, in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are visible to viper.
	_ = godotenv.Load()
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (keys match the environment variables, lowercased)")
	pf.String("api-url", "", "content API base URL (WP_API_URL)")
	pf.String("site-url", "", "canonical site origin (NEXT_PUBLIC_SITE_URL)")
	pf.String("log-level", "info", "log level: debug, info, warn, error (LOG_LEVEL)")
	pf.String("log-format", "json", "log format: json or console (LOG_FORMAT)")
	_ = v.BindPFlag("wp_api_url", pf.Lookup("api-url"))
	_ = v.BindPFlag("next_public_site_url", pf.Lookup("site-url"))
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log_format", pf.Lookup("log-format"))

	rootCmd.AddCommand(serveCommand(), sitemapCommand(), pathsCommand(), versionCommand())
}

func initConfig() error {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

// siteConfig builds the SiteConfig from flags, environment and config file.
// Zero values are filled in by pressfront's defaults.
func siteConfig() pressfront.SiteConfig {
	siteURL := v.GetString("next_public_site_url")
	if siteURL == "" {
		siteURL = v.GetString("site_url")
	}
	return pressfront.SiteConfig{
		Name:              v.GetString("site_name"),
		URL:               siteURL,
		Description:       v.GetString("site_description"),
		OGImage:           v.GetString("og_image"),
		APIURL:            v.GetString("wp_api_url"),
		UpstreamTimeout:   v.GetDuration("upstream_timeout"),
		TermCacheTTL:      v.GetDuration("term_cache_ttl"),
		Addr:              v.GetString("addr"),
		PostsPerPage:      v.GetInt("posts_per_page"),
		FeedSize:          v.GetInt("feed_size"),
		SitemapPageSize:   v.GetInt("sitemap_page_size"),
		PathsPageSize:     v.GetInt("paths_page_size"),
		WalkMaxIterations: v.GetInt("walk_max_iterations"),
		WalkRateLimit:     v.GetInt("walk_rate_limit"),
		MapPointsFile:     v.GetString("map_points_file"),
	}
}

// newApp builds a configured App with a zap logger.
func newApp(opts ...pressfront.Option) (*pressfront.App, *zap.Logger, error) {
	log, err := pressfront.NewLogger(v.GetString("log_level"), v.GetString("log_format"))
	if err != nil {
		return nil, nil, err
	}
	opts = append([]pressfront.Option{pressfront.WithLogger(log)}, opts...)
	if dir := v.GetString("static_dir"); dir != "" {
		opts = append(opts, pressfront.WithStaticDir(dir))
	}
	app := pressfront.New(siteConfig(), opts...)
	if err := app.Setup(); err != nil {
		_ = log.Sync()
		return nil, nil, err
	}
	return app, log, nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pressfront version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pressfront %s\n", version)
		},
	}
}
