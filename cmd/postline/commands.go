package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/postline/internal/config"
	"github.com/postline/internal/debug"
	"github.com/postline/internal/logger"
	"github.com/postline/internal/parser"
	"github.com/postline/internal/validation"
	"github.com/postline/internal/web"
)

// extraCommands are registered by files behind build tags.
var extraCommands []func(*cli) *cobra.Command

// cli is the state shared by all subcommands of one root command.
type cli struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger

	noFacilities    bool
	noParenthetical bool
	camel           bool
	debug           bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "postline",
		Short:         "Free-text US and Canadian address parser",
		Long:          `Parse unstructured mailing addresses, intersections and PO boxes into structured records`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("country", "auto", "restrict parsing to US, CA or auto")
	flags.Bool("strict", false, "drop postal codes that fail validation")
	flags.Bool("validate-postal", false, "mark valid postal codes with zip_valid")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&c.noFacilities, "no-facilities", false, "disable facility name extraction")
	flags.BoolVar(&c.noParenthetical, "no-parenthetical", false, "keep parenthetical notes in the street")
	flags.BoolVar(&c.camel, "camel", false, "emit camelCase keys")
	flags.BoolVar(&c.debug, "debug", config.GetEnvBool("POSTLINE_DEBUG", false), "trace each parsing phase to stderr")

	_ = c.v.BindPFlag("default_country", flags.Lookup("country"))
	_ = c.v.BindPFlag("strict", flags.Lookup("strict"))
	_ = c.v.BindPFlag("validate_postal", flags.Lookup("validate-postal"))
	_ = c.v.BindPFlag("log_level", flags.Lookup("log-level"))

	rootCmd.AddCommand(
		c.parseCmd("parse", "Classify and parse an address, intersection or PO box", parser.ParseLocation),
		c.parseCmd("intersection", "Parse a street intersection", func(s string, o parser.Options) parser.Result {
			if r := parser.ParseIntersection(s, o); r != nil {
				return r
			}
			return nil
		}),
		c.parseCmd("informal", "Parse with the lenient fallback parser only", func(s string, o parser.Options) parser.Result {
			if r := parser.ParseInformalAddress(s, o); r != nil {
				return r
			}
			return nil
		}),
		c.parseCmd("pobox", "Parse a PO box, rural route or RPO address", func(s string, o parser.Options) parser.Result {
			if r := parser.ParsePoBox(s, o); r != nil {
				return r
			}
			return nil
		}),
		c.postalCmd(),
		c.serveCmd(),
	)
	for _, extra := range extraCommands {
		rootCmd.AddCommand(extra(c))
	}

	return rootCmd
}

// setup loads configuration and installs the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel
	if c.debug {
		level = "debug"
	}
	format := "console"
	if cmd.Name() == "serve" {
		format = cfg.LogFormat
	}
	c.logger = logger.Init(cmd.ErrOrStderr(), format, level)
	debug.SetLogger(&c.logger)
	return nil
}

// options builds the parse options from configuration and flags.
func (c *cli) options() (parser.Options, error) {
	opts := web.ParseDefaults(c.cfg)
	opts.ExtractFacilities = !c.noFacilities
	opts.ParseParenthetical = !c.noParenthetical
	opts.Debug = c.debug
	if c.camel {
		opts.KeyStyle = parser.KeyCamel
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

type parseFunc func(string, parser.Options) parser.Result

func (c *cli) parseCmd(use, short string, parse parseFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [address]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			res := parse(input, opts)
			if res == nil {
				c.logger.Debug().Str("input", input).Msg("no parse")
				return fmt.Errorf("%s: %w", use, parser.ErrNoParse)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"kind":   res.Kind(),
				"result": res.ToMap(opts.KeyStyle),
			})
		},
	}
}

func (c *cli) postalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postal [code]",
		Short: "Validate and normalise a ZIP or postal code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := validation.ValidatePostalCode(strings.Join(args, " "))
			if err := writeJSON(cmd.OutOrStdout(), pr); err != nil {
				return err
			}
			if !pr.IsValid {
				return fmt.Errorf("invalid postal code: %s", pr.Formatted)
			}
			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := web.NewServer(c.cfg, c.logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return server.Start(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	_ = c.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
