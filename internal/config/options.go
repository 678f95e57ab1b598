package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// ctxKeyOptions is used to store options within a cobra command context.
type ctxKeyOptions struct{}

// Options contains global flags shared by all commands.
type Options struct {
	RootDir    string
	ConfigFile string
	InputFile  string
	JSONOutput bool
	Verbose    bool
	LogFile    string
	Scan       ScanSettings

	logger   *logrus.Logger
	logClose func() error
}

var (
	optionsMu sync.RWMutex
	current   *Options
)

// New creates a new Options instance populated with defaults.
func New() *Options {
	return &Options{
		InputFile: DefaultInputFile,
		Scan:      DefaultScanSettings(),
	}
}

// Init populates options, loads the optional config file and configures logging.
func (o *Options) Init(root, configFile string, jsonOut, verbose bool, logFile string) error {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}
		root = cwd
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}

	if _, err := os.Stat(absRoot); err != nil {
		return fmt.Errorf("root path invalid: %w", err)
	}

	o.RootDir = absRoot
	o.JSONOutput = jsonOut
	o.Verbose = verbose
	o.LogFile = logFile

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		var output io.Writer = os.Stderr
		if logFile != "" {
			// #nosec G304 -- log file path provided via command flag
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			output = f
			o.logClose = f.Close
		}
		logger.SetOutput(output)
	} else {
		logger.SetLevel(logrus.WarnLevel)
		logger.SetOutput(io.Discard)
	}
	o.logger = logger

	if err := o.loadConfigFile(configFile); err != nil {
		// #nosec G104 -- the load error is the one worth reporting
		o.Close()
		return err
	}

	SetCurrent(o)
	return nil
}

// InputPath resolves the file to scan. An empty name selects the configured input file;
// relative names are resolved against RootDir.
func (o *Options) InputPath(name string) string {
	if name == "" {
		name = o.InputFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.RootDir, name)
}

// SetCurrent stores the provided options as the globally accessible configuration.
func SetCurrent(o *Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	current = o
}

// Current retrieves the globally stored options.
func Current() (*Options, error) {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	if current == nil {
		return nil, fmt.Errorf("configuration not initialised")
	}
	return current, nil
}

// Close releases any resources held by options (e.g., log files).
func (o *Options) Close() error {
	if o.logClose != nil {
		closeFn := o.logClose
		o.logClose = nil
		return closeFn()
	}
	return nil
}

// WithContext returns a new context with the options stored.
func (o *Options) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKeyOptions{}, o)
}

// FromContext extracts Options from command context.
func FromContext(ctx context.Context) (*Options, error) {
	if ctx == nil {
		return nil, fmt.Errorf("nil context provided")
	}
	if opts, ok := ctx.Value(ctxKeyOptions{}).(*Options); ok {
		return opts, nil
	}
	return Current()
}

// Logger exposes the configured logger. Options that were never initialised get a discarding logger.
func (o *Options) Logger() *logrus.Logger {
	if o.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		o.logger = logger
	}
	return o.logger
}
