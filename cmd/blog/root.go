package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manxeguin/blog"
	"github.com/manxeguin/blog/internal/logging"
)

// configKeys are bound to BLOG_* environment variables so they can be set
// without a config file.
var configKeys = []string{
	"name", "url", "description", "author",
	"twitter_handle", "social_image", "social_card_source", "robots",
	"analytics_script_url", "analytics_client_key", "analytics_key_attr",
	"addr", "database_path", "content_dir", "static_dir", "output_dir",
	"post_cache_ttl", "watch", "log_level",
}

type options struct {
	cfgFile string
	cfg     blog.SiteConfig
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "blog",
		Short:         "Manxeguin Dev - a Markdown blog served with Echo and templ",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newServeCmd(opts),
		newBuildCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *options) load(cmd *cobra.Command) error {
	v := viper.New()
	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || o.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&o.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	o.logger = logging.BuildLogger(o.cfg.LogLevel)
	if used := v.ConfigFileUsed(); used != "" {
		o.logger.Debug("using config file", "path", used)
	}
	return nil
}

// open builds and opens the application from the loaded configuration.
func (o *options) open() (*blog.App, error) {
	app := blog.New(o.cfg, blog.WithLogger(o.logger))
	if err := app.Open(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blog version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blog %s\n", version)
		},
	}
}
