// nyxpng hides, reveals, and removes text messages stored as chunks inside
// PNG files.
//
// Usage:
//
//	nyxpng [--config FILE] [--log-level LEVEL] COMMAND [ARGS]
//
// Commands:
//
//	encode FILE [TYPE] MESSAGE append a TYPE chunk holding MESSAGE
//	decode FILE [TYPE]         print the first TYPE chunk as text
//	remove FILE [TYPE]         drop the first TYPE chunk
//	print FILE...              list every chunk
//	inspect [--json] FILE      summarise chunks and print an OCI descriptor
//
// TYPE defaults to chunk_type from the config file. encode and remove never
// modify FILE; they write a sibling file named after it (see Config for the
// suffixes).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run parses global flags, loads configuration, and dispatches to a command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var configPath, logLevel string

	flagSet := pflag.NewFlagSet("nyxpng", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+configEnv+")")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
		stderr: stderr,
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return errors.New("missing command")
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		printUsage(stderr, flagSet)
		return fmt.Errorf("unknown command %q", rest[0])
	}
	return cmd(ctx, a, rest[1:])
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `nyxpng hides messages in PNG chunks.

Usage:
  nyxpng [flags] encode FILE [TYPE] MESSAGE
  nyxpng [flags] decode FILE [TYPE]
  nyxpng [flags] remove FILE [TYPE]
  nyxpng [flags] print FILE...
  nyxpng [flags] inspect [--json] FILE

TYPE is a four-letter chunk type such as "ruSt". The case of each letter
sets a property bit; use a lowercase first letter so image viewers ignore
the chunk. When TYPE is omitted, chunk_type from the config file is used.

Flags:
`)
	fmt.Fprint(w, flagSet.FlagUsages())
}
