package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gofetch/ascii"
	"gofetch/config"
	"gofetch/logging"
	"gofetch/output"
	"gofetch/sysinfo"
	"gofetch/terminal"
)

var version = "dev"

// options holds the command line values. Only flags the user actually set
// are layered over the loaded config.
type options struct {
	verbosity  int
	configPath string
	noConfig   bool

	stdout    bool
	json      bool
	logoOnly  bool
	backend   string
	distro    string
	colors    []string
	asciiBold bool
	gap       int

	separator     string
	underline     bool
	underlineChar string
	bold          bool
	titleFQDN     bool
	memoryUnit    string
	uptime        string

	colorBlocks bool
	blockRange  []int
	blockWidth  int
}

// NewRootCmd builds the gofetch command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gofetch",
		Short: "Show system information next to a distribution logo",
		Long: `gofetch prints an ASCII logo for the running operating system with a
column of system information beside it.

Settings are read from $XDG_CONFIG_HOME/gofetch/config.toml when present.
Command line flags override the file.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/gofetch/config.toml)")
	flags.BoolVar(&opts.noConfig, "no-config", false, "ignore the config file and use built-in defaults")
	flags.BoolVar(&opts.stdout, "stdout", false, "print plain text info without logo or colors")
	flags.BoolVar(&opts.json, "json", false, "print a JSON summary")
	flags.BoolVarP(&opts.logoOnly, "logo", "L", false, "print only the logo")
	flags.StringVar(&opts.backend, "backend", "", "image backend (only ascii is drawn)")
	flags.StringVar(&opts.distro, "ascii", "", "draw the logo for this distro instead of the detected one")
	flags.StringSliceVar(&opts.colors, "ascii-colors", nil, "logo palette, e.g. red,white or distro")
	flags.BoolVar(&opts.asciiBold, "ascii-bold", true, "draw the logo in bold")
	flags.IntVar(&opts.gap, "gap", 3, "spaces between the logo and the info column")
	flags.StringVar(&opts.separator, "separator", ":", "text between a label and its value")
	flags.BoolVar(&opts.underline, "underline", true, "underline the title")
	flags.StringVar(&opts.underlineChar, "underline-char", "-", "character used for the title underline")
	flags.BoolVar(&opts.bold, "bold", true, "bold labels and title")
	flags.BoolVar(&opts.titleFQDN, "title-fqdn", false, "show the fully qualified host name in the title")
	flags.StringVar(&opts.memoryUnit, "memory-unit", "mib", "memory unit: kib, mib or gib")
	flags.StringVar(&opts.uptime, "uptime-shorthand", "on", "uptime format: on, tiny or off")
	flags.BoolVar(&opts.colorBlocks, "color-blocks", true, "show the color swatch footer")
	flags.IntSliceVar(&opts.blockRange, "block-range", []int{0, 15}, "first and last palette index of the swatch")
	flags.IntVar(&opts.blockWidth, "block-width", 3, "cells per swatch block")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runFetch(cmd *cobra.Command, opts *options) error {
	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("fetch")

	done := logging.LogOperationStart(logger, "collect")
	info := sysinfo.GetSystemInfo(sysinfo.Options{
		TitleFQDN:       settings.Info.TitleFQDN,
		MemoryUnit:      settings.Info.MemoryUnit,
		UptimeShorthand: settings.Info.UptimeShorthand,
		ColorBlocks:     settings.Format.ColorBlocks,
		BlockStart:      settings.Format.BlockRange[0],
		BlockEnd:        settings.Format.BlockRange[1],
		BlockWidth:      settings.Format.BlockWidth,
	})
	done()

	width := terminal.Width(os.Stdout, os.Stderr)
	logger.Debug().Int("width", width).Msg("Terminal width")

	done = logging.LogOperationStart(logger, "render")
	out, err := output.Render(ascii.NewStore(), info, settings, width)
	done()
	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func loadSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	settings := config.Defaults()
	if !opts.noConfig {
		var err error
		if settings, err = config.Load(opts.configPath); err != nil {
			return settings, err
		}
	}

	applyFlags(cmd, opts, &settings)
	settings.Normalize()

	log.Debug().
		Int("gap", settings.Display.Gap).
		Str("backend", string(settings.Display.Backend)).
		Str("ascii_distro", settings.Display.AsciiDistro).
		Msg("Settings loaded")

	return settings, nil
}

// applyFlags copies every flag the user set onto s.
func applyFlags(cmd *cobra.Command, opts *options, s *config.Settings) {
	changed := cmd.Flags().Changed

	s.JSON = opts.json
	s.LogoOnly = opts.logoOnly

	if changed("stdout") {
		s.Display.Stdout = opts.stdout
	}
	if changed("backend") {
		s.Display.Backend = config.ParseBackend(opts.backend)
	}
	if changed("ascii") {
		s.Display.AsciiDistro = opts.distro
	}
	if changed("ascii-colors") {
		s.Display.AsciiColors = opts.colors
	}
	if changed("ascii-bold") {
		s.Display.AsciiBold = opts.asciiBold
	}
	if changed("gap") {
		s.Display.Gap = opts.gap
	}
	if changed("separator") {
		s.Info.Separator = opts.separator
	}
	if changed("underline") {
		s.Info.UnderlineEnabled = opts.underline
	}
	if changed("underline-char") {
		s.Info.UnderlineChar = opts.underlineChar
	}
	if changed("bold") {
		s.Info.Bold = opts.bold
	}
	if changed("title-fqdn") {
		s.Info.TitleFQDN = opts.titleFQDN
	}
	if changed("memory-unit") {
		s.Info.MemoryUnit = opts.memoryUnit
	}
	if changed("uptime-shorthand") {
		s.Info.UptimeShorthand = opts.uptime
	}
	if changed("color-blocks") {
		s.Format.ColorBlocks = opts.colorBlocks
	}
	if changed("block-range") {
		s.Format.BlockRange = opts.blockRange
	}
	if changed("block-width") {
		s.Format.BlockWidth = opts.blockWidth
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gofetch version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gofetch config file",
	}

	var path string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings to a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Defaults(), path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Config file written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "destination (default is $XDG_CONFIG_HOME/gofetch/config.toml)")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
