// Command blog runs the blog posts API.
//
//	blog serve [--migrate]   start the HTTP server
//	blog migrate             apply database migrations and exit
//	blog email-preview       render an email template with sample data
//
// Configuration is read from BLOG_* environment variables (and .env).
package main

import (
	"os"

	"github.com/deppfellow/blog-posts/internal/config"
	"github.com/deppfellow/blog-posts/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog",
		Short:         "Blog posts API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newEmailPreviewCmd())
	return root
}

// bootstrap loads the config and builds the application logger. The
// returned LoggerService must be shut down by the caller.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return cfg, loggerService, log, nil
}
