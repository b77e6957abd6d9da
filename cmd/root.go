package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gobattleship/director/random"
	"github.com/they4kman/gobattleship/game"
	"github.com/they4kman/gobattleship/ui"
)

const (
	envSize     = "BATTLESHIP_SIZE"
	envSeed     = "BATTLESHIP_SEED"
	envLogLevel = "BATTLESHIP_LOG_LEVEL"
)

var errNoTerminal = errors.New("gobattleship must be run in an interactive terminal")

type options struct {
	configPath  string
	seed        int64
	logFile     string
	logLevel    logrus.Level
	useDirector bool
	maxAttempts int
	history     int

	getenv func(string) string
}

var rootCmd = newRootCmd(&options{getenv: os.Getenv})

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobattleship [SIZE]",
		Short: "Sink a hidden fleet on a square grid",
		Long: `gobattleship hides a fleet of six ships on a SIZE x SIZE grid
(default 20, between 6 and 26). Type a move such as B7 and press Enter to
fire; sink every ship to win.

Play on the default board
	gobattleship

Play on a small board with a fixed layout
	gobattleship --seed 42 8
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			config, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			logger, closeLog, err := opts.newLogger()
			if err != nil {
				return err
			}
			defer closeLog()
			config.Logger = logger

			return play(config)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "Seed for ship placement (default: current time)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: logs are discarded)")
	cmd.Flags().Var(newLogLevelValue(logrus.InfoLevel, &opts.logLevel), "log-level", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVarP(&opts.useDirector, "director", "d", false, "Let the computer fire one shot per Right arrow press")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", game.DefaultMaxPlacementAttempts, "Placement attempts per ship before giving up")
	cmd.Flags().IntVar(&opts.history, "history", game.DefaultHistoryLength, "Number of recent shots to display")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolve builds the game config from, in increasing precedence: defaults,
// the config file, the environment, then flags and the SIZE argument.
func (opts *options) resolve(cmd *cobra.Command, args []string) (game.GameConfig, error) {
	config := game.NewGameConfig()
	config.MaxPlacementAttempts = opts.maxAttempts
	config.HistoryLength = opts.history

	if opts.configPath != "" {
		if err := config.LoadFile(opts.configPath); err != nil {
			return config, err
		}
	}

	if err := opts.applyEnv(cmd, &config); err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if flags.Changed("max-attempts") {
		config.MaxPlacementAttempts = opts.maxAttempts
	}
	if flags.Changed("history") {
		config.HistoryLength = opts.history
	}

	if len(args) == 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return config, fmt.Errorf("invalid size %q", args[0])
		}
		config.Size = size
	}

	if opts.useDirector {
		config.Director = &random.Director{Rand: rand.New(rand.NewSource(config.Seed))}
	}

	return config, nil
}

func (opts *options) applyEnv(cmd *cobra.Command, config *game.GameConfig) error {
	if value := opts.getenv(envSize); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q", envSize, value)
		}
		config.Size = size
	}

	if value := opts.getenv(envSeed); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", envSeed, value)
		}
		config.Seed = seed
	}

	if value := opts.getenv(envLogLevel); value != "" && !cmd.Flags().Changed("log-level") {
		level, err := logrus.ParseLevel(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q", envLogLevel, value)
		}
		opts.logLevel = level
	}

	return nil
}

func (opts *options) newLogger() (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetLevel(opts.logLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if opts.logFile == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(file)

	return logger, func() { file.Close() }, nil
}

func play(config game.GameConfig) error {
	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	return ui.New(screen, g).Run()
}

type logLevelValue logrus.Level

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	if level, err := logrus.ParseLevel(value); err == nil {
		*levelVal = logLevelValue(level)
		return nil
	} else {
		return fmt.Errorf("invalid log level %q", value)
	}
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}
