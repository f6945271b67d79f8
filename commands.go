package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go-bibsort/config"
	"go-bibsort/pkg/criteria"
	"go-bibsort/server"
	"go-bibsort/services"
	"go-bibsort/services/executor"
	"go-bibsort/services/menu"
	"go-bibsort/services/printer"
	"go-bibsort/util/helpers"
	"go-bibsort/util/logger"
)

type app struct {
	configPath string
	file       string
	format     string
	logLevel   string

	configs *config.AppConfig
	es      *executor.ExecutorService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bibsort",
		Short:         "Sort a bibliographic index by title, title words, path or year",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (yaml, json or toml)")
	flags.StringVarP(&a.file, "file", "f", "", "index file to load, overrides loader.path")
	flags.StringVar(&a.format, "format", "", "output format: text, json or msgpack")
	flags.StringVar(&a.logLevel, "log-level", "", "log level, overrides log.level")

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Interactive menu (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
		a.sortCmd(),
		&cobra.Command{
			Use:   "serve",
			Short: "Serve sorted articles over HTTP",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve()
			},
		},
	)

	return root
}

func (a *app) sortCmd() *cobra.Command {
	var (
		by     string
		limit  int
		stable bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Print the index sorted by one criterion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := criteria.Parse(by)
			if err != nil {
				return err
			}

			res, err := a.es.Exec(executor.Request{Criterion: c, Limit: limit, Stable: stable})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := helpers.CreateFile(out)
				if err != nil {
					return errors.Wrapf(err, "failed to create '%s'", out)
				}
				defer f.Close()
				w = f
			}

			return printer.Write(w, printer.NewPage(res.Criterion, res.Total, res.Items), a.outputFormat())
		},
	}

	cmd.Flags().StringVarP(&by, "by", "b", "title", "criterion: title, words, path or year")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show only the first n articles (0 = all)")
	cmd.Flags().BoolVar(&stable, "stable", false, "keep load order among equal keys")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

// setup loads configs and the index once for any subcommand.
func (a *app) setup() error {
	configs, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.file != "" {
		configs.LoaderConfig.Path = a.file
	}
	if a.format != "" {
		configs.OutputConfig.Format = a.format
	}
	if a.logLevel != "" {
		configs.LogConfig.Level = a.logLevel
	}

	if err := logger.SetLevel(configs.LogConfig.Level); err != nil {
		return err
	}
	if _, err := printer.ParseFormat(configs.OutputConfig.Format); err != nil {
		return err
	}

	svc, err := services.New(configs)
	if err != nil {
		return err
	}

	a.configs = configs
	a.es = svc.ExecutorService
	return nil
}

func (a *app) outputFormat() printer.Format {
	f, _ := printer.ParseFormat(a.configs.OutputConfig.Format)
	return f
}

func (a *app) runMenu(in io.Reader, out io.Writer) error {
	return menu.New(a.es, a.outputFormat()).Run(in, out)
}

func (a *app) serve() error {
	s, err := server.New(a.configs.ServerConfig, a.es)
	if err != nil {
		return errors.Wrap(err, "error while initializing server")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-s.Start():
		return err
	case q := <-quit:
		logger.L.Infof("%s signal received, stopping gracefully...", q.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Stop(ctx)
}
