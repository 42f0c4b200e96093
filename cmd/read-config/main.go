package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/read-config/internal/application"
	"github.com/eugenenazirov/read-config/internal/config"
	"github.com/eugenenazirov/read-config/internal/logging"
	"github.com/eugenenazirov/read-config/internal/lookup"
)

const programName = "read-config"

var exit = os.Exit

// keyArg records whether the key was supplied, so an explicit "" is looked up
// like any other key instead of being treated as missing.
type keyArg struct {
	value string
	set   bool
}

func (k *keyArg) Set(value string) error {
	k.value = value
	k.set = true
	return nil
}

func (k *keyArg) String() string {
	return k.value
}

func main() {
	exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one lookup and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return 1
	}

	// config_file is always a path, never an @arguments file.
	kingpin.EnableFileExpansion = false

	helpShown := false
	kingpinApp := kingpin.New(programName, "Reads video generation settings from a YAML configuration file")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Terminate(func(int) {
		helpShown = true
	})

	key := &keyArg{}
	kingpinApp.Arg("key", "Setting to print ("+lookup.SupportedKeys()+")").
		HintOptions(lookup.Keys()...).
		SetValue(key)
	configFile := kingpinApp.Arg("config_file", "Path to the configuration file (default "+lookup.DefaultConfigFile+")").String()
	logLevel := kingpinApp.Flag("log-level", "Diagnostic log level written to stderr").String()

	if _, err := kingpinApp.Parse(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		printUsage(stderr)
		return 1
	}
	if helpShown {
		return 0
	}
	if !key.set {
		printUsage(stderr)
		return 1
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile: configFile,
		LogLevel:   logLevel,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := app.Run(context.Background(), key.value, stdout); err != nil {
		logger.Debug("lookup failed", zap.String("key", key.value), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <key> [config_file]\n", programName)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s api_key\n", programName)
	fmt.Fprintf(w, "  %s base_url\n", programName)
	fmt.Fprintf(w, "  %s model\n", programName)
	fmt.Fprintf(w, "  %s app_id %s\n", programName, lookup.DefaultConfigFile)
	fmt.Fprintf(w, "Supported keys: %s\n", lookup.SupportedKeys())
}
