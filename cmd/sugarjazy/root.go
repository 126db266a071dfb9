package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/config"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/logger"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/parsers"
	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/runner"
)

var (
	Version = "v0.1"
	build   = "dev"
)

const envPrefix = "SUGARJAZY"

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "sugarjazy [flags] [files...]",
		Short: "sugarjazy - make JSON container logs readable",
		Long: `sugarjazy reformats JSON log lines (knative, tekton, zap style) into colored,
single-line text. Lines come from files, from stdin in one go, or from stdin as a
live stream (--stream), optionally prefixed by kail (--kail).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.String("timeformat", config.DefaultTimeFormat,
		`timeformat default only to the hour:minute:second. Use "%Y-%m-%d %H:%M:%S" if you want to add the year`)
	flags.StringP("regexp-highlight", "r", "", `highlight a regexp in message, eg: "Failed:\s*\d+, Cancelled\s*\d+"`)
	flags.String("regexp-color", config.DefaultRegexpColor,
		"regexp highlight color ("+strings.Join(colors.Names(), ", ")+")")
	flags.Bool("disable-event-colouring", false,
		"don't add a colored "+parsers.EventChar+" marker identifying which event a line belongs to")
	flags.StringP("filter-level", "F", "", "filter levels separated by commas, eg: info,debug")
	flags.BoolP("stream", "s", false, "wait for input stream")
	flags.BoolP("kail", "k", false, "assume streaming logs from kail (https://github.com/boz/kail)")
	flags.Bool("kail-no-prefix", false, "by default kail will print the prefix unless you specify this flag")
	flags.String("kail-prefix-format", config.DefaultKailPrefixFormat,
		"the template of the kail prefix ({namespace}, {pod}, {container})")
	flags.BoolP("hide-timestamp", "H", false, "don't show timestamp")
	flags.String("color", string(colors.ModeAlways), "when to color output: always, auto, never")
	flags.String("log-level", config.DefaultLogLevel, "diagnostic log level on stderr: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runFormat(cmd *cobra.Command, v *viper.Viper, args []string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := config.Load(v); err != nil {
		return err
	}
	cfg := config.Get()
	cfg.Files = args

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// one color table for the whole run, shared by every file
	p, err := parsers.NewLineParser(parsers.ParserOptions{
		Config: cfg,
		Events: colors.NewEventTable(nil),
	})
	if err != nil {
		return fmt.Errorf("create parser: %w", err)
	}

	return runner.Run(cmd.Context(), cfg, p, cmd.InOrStdin(), cmd.OutOrStdout())
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
