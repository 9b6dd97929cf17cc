package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesrace/internal/config"
	"salesrace/internal/logging"
	"salesrace/internal/race"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	targetFlag  float64
	themeFlag   string
	metricsAddr string

	// Logger
	logger = zap.NewNop()

	// version is set at build time with -ldflags "-X main.version=...".
	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "salesrace",
	Short: "Sales Race - a leaderboard where sellers race to a sales target",
	Long: `salesrace turns a sales competition into a race.

Every seller is a car on the track. Cars move toward the finish line as
their sales approach the target; the first to cross it wins the race.

Run without arguments to start the interactive board.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runBoard,
}

// renderCmd prints a single frame of the board
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the board once and exit",
	Long: `Renders every panel of the board to stdout using the configured roster.

Example:
  salesrace render --set Ana=1200 --set Bia=800 --target 1000`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

// initCmd writes a starter config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Creates .salesrace/config.yaml (or the --config path) with the default
target, currency, theme and a one-seller roster, ready to edit.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the salesrace version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "salesrace %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().Float64Var(&targetFlag, "target", race.DefaultTarget, "Starting race target")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme: auto, light or dark")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address")

	// Render flags
	renderCmd.Flags().StringArray("set", nil, "Set a competitor value as name=value (repeatable)")
	renderCmd.Flags().Int("width", 0, "Terminal width to lay out for (default: fit 100 columns)")

	// Init flags
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Add commands to root
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies flag overrides, validates the
// result and initializes logging from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Race.Target = targetFlag
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = config.Theme(themeFlag)
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	if err := logging.Initialize(cfg.Logging, verbose); err != nil {
		return nil, err
	}
	logger = logging.Get(logging.CategoryBoot)
	logger.Info("config loaded",
		zap.String("path", configPath),
		zap.Float64("target", cfg.Race.Target),
		zap.Int("competitors", len(cfg.Race.Competitors)),
		zap.String("theme", string(cfg.UI.Theme)))
	return cfg, nil
}

// newStore seeds a store from cfg. Observers see every later mutation.
func newStore(cfg *config.Config, observers ...race.Observer) *race.Store {
	opts := []race.Option{
		race.WithLogger(logging.Get(logging.CategoryRace)),
		race.WithTarget(race.ClampTarget(cfg.Race.Target)),
		race.WithRoster(cfg.Roster()),
	}
	for _, o := range observers {
		opts = append(opts, race.WithObserver(o))
	}
	return race.NewStore(opts...)
}
