// bagua - eight-trigram codec CLI
//
// Usage:
//
//	bagua encode [--mode text|number|binary] [input]   Encode input as trigrams
//	bagua decode [glyphs]                              Decode trigrams to text
//	bagua describe [glyphs]                            Describe every trigram of a sequence
//	bagua table                                        Print the eight trigrams
//	bagua relations [trigram]                          Print element and yin-yang relations
//	bagua config init [--force]                        Write the effective settings to the config file
//	bagua version                                      Print version info
//
// If no input argument is given, reads from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Neumenon/bagua/bagua"
	"github.com/Neumenon/bagua/internal/config"
	"github.com/Neumenon/bagua/internal/i18n"
	"github.com/Neumenon/bagua/internal/logging"
	"github.com/Neumenon/bagua/internal/present"
)

const version = "0.1.0"

// app carries the state shared by every subcommand.
type app struct {
	// flags
	configPath string
	verbose    bool
	locale     string
	format     string
	noColor    bool
	detail     int
	mode       string
	force      bool

	cfg      *config.Config
	logger   *zap.Logger
	codec    *bagua.Codec
	renderer present.Renderer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), codec: bagua.NewCodec(nil)}

	root := &cobra.Command{
		Use:   "bagua",
		Short: "Encode text, numbers and bits as the eight trigrams",
		Long: `bagua maps text, unsigned integers and raw bit-strings to the eight
trigrams (☷ ☶ ☵ ☴ ☳ ☲ ☱ ☰), three bits per symbol, and decodes them back.

Text uses 16 bits per UTF-16 code unit, so decode(encode(text)) gives the
text back. Decoding is lossy the other way: padding bits are dropped.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.locale, "locale", "", "label locale (en-US, zh-CN)")
	pf.StringVar(&a.format, "format", "", "output format (text, json)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")
	pf.IntVar(&a.detail, "detail", -1, "number of trigrams described in detail")

	encodeCmd := &cobra.Command{
		Use:   "encode [input]",
		Short: "Encode input as a trigram sequence",
		Long: `Encodes input in one of three modes:
  text    each character becomes 16 bits (default)
  number  a non-negative decimal integer in minimal binary
  binary  a raw bit-string; characters other than 0 and 1 are dropped`,
		RunE: a.runEncode,
	}
	encodeCmd.Flags().StringVarP(&a.mode, "mode", "m", "", "input mode (text, number, binary)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigInit,
	}
	initCmd.Flags().BoolVar(&a.force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(initCmd)

	root.AddCommand(
		encodeCmd,
		configCmd,
		&cobra.Command{
			Use:   "decode [glyphs]",
			Short: "Decode a trigram sequence back to text",
			RunE:  a.runDecode,
		},
		&cobra.Command{
			Use:   "describe [glyphs]",
			Short: "Describe every trigram of a sequence",
			RunE:  a.runDescribe,
		},
		&cobra.Command{
			Use:   "table",
			Short: "Print the eight trigrams and their bit groups",
			Args:  cobra.NoArgs,
			RunE:  a.runTable,
		},
		&cobra.Command{
			Use:   "relations [trigram]",
			Short: "Print generating, controlling and yin-yang relations",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runRelations,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version info",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "bagua %s\n", version)
			},
		},
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and renderer.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.locale != "" {
		cfg.Locale = a.locale
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.noColor {
		cfg.Color = false
	}
	if a.detail >= 0 {
		cfg.DetailLimit = a.detail
	}
	if a.mode != "" {
		cfg.Mode = a.mode
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	loc := i18n.Default().Localizer(cfg.Locale)
	if cfg.Format == config.FormatJSON {
		a.renderer = present.JSONRenderer{Loc: loc}
	} else {
		a.renderer = present.NewTextRenderer(loc, cfg.Color)
	}

	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("mode", cfg.Mode),
		zap.String("locale", cfg.Locale),
		zap.String("format", cfg.Format))
	return nil
}

// readInput joins args, or reads stdin when there are none. One trailing
// newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	mode := a.cfg.InputMode()

	report, err := present.Encode(a.codec, mode, input, a.cfg.DetailLimit)
	if errors.Is(err, bagua.ErrInvalidNumber) {
		// Bad numbers produce empty output, not a failure.
		a.logger.Warn("invalid number input", zap.String("input", input), zap.Error(err))
		loc := i18n.Default().Localizer(a.cfg.Locale)
		fmt.Fprintln(cmd.ErrOrStderr(), loc.T("error.invalid_number", strings.TrimSpace(input)))
		report, err = present.Encode(a.codec, mode, "", a.cfg.DetailLimit)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("encoded",
		zap.Stringer("mode", mode),
		zap.Int("input_len", report.Stats.InputLen),
		zap.Int("symbols", report.Stats.CodeLen))
	return a.renderer.Render(cmd.OutOrStdout(), report)
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	report := present.Decode(a.codec, input, a.cfg.DetailLimit)

	a.logger.Debug("decoded",
		zap.Int("symbols", len(report.Sequence)),
		zap.Int("bits", len(report.Bits)),
		zap.Int("chars", len([]rune(report.Decoded))))
	return a.renderer.Render(cmd.OutOrStdout(), report)
}

func (a *app) runDescribe(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	descs := a.codec.DescribeSequence(bagua.ParseSequence(input))
	return a.renderer.RenderTable(cmd.OutOrStdout(), descs)
}

func (a *app) runTable(cmd *cobra.Command, args []string) error {
	return a.renderer.RenderTable(cmd.OutOrStdout(), a.codec.Table().Descriptors())
}

func (a *app) runRelations(cmd *cobra.Command, args []string) error {
	rels := bagua.Relations()
	if len(args) == 1 {
		g, ok := bagua.ParseTrigram(args[0])
		if !ok {
			return fmt.Errorf("unknown trigram %q", args[0])
		}
		rels = bagua.RelationsOf(g)
	}
	return a.renderer.RenderRelations(cmd.OutOrStdout(), a.codec.Table(), rels)
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(a.configPath); err == nil && !a.force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", a.configPath)
	}
	if err := a.cfg.Save(a.configPath); err != nil {
		return err
	}
	a.logger.Info("config written", zap.String("path", a.configPath))
	fmt.Fprintln(cmd.OutOrStdout(), a.configPath)
	return nil
}
