package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/spf13/pflag"

	"github.com/meigma/pngchunk"
)

// app carries state shared by all commands.
type app struct {
	cfg    Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// parseOptions returns the parse options implied by the configuration.
func (a *app) parseOptions() []pngchunk.Option {
	return []pngchunk.Option{
		pngchunk.WithLogger(a.logger),
		pngchunk.WithMaxChunkLength(a.cfg.MaxChunkLength),
	}
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"encode":  runEncode,
	"decode":  runDecode,
	"remove":  runRemove,
	"print":   runPrint,
	"inspect": runInspect,
}

// newFlagSet builds a command flag set that prints usage on --help.
func newFlagSet(a *app, name, usage string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage:\n  nyxpng %s %s\n\nFlags:\n%s", name, usage, fs.FlagUsages())
	}
	return fs
}

// parseArgs parses flags and checks the positional argument count.
// A negative maxArgs allows any number of arguments at or above minArgs.
func parseArgs(fs *pflag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	pos := fs.Args()
	if len(pos) < minArgs || (maxArgs >= 0 && len(pos) > maxArgs) {
		fs.Usage()
		return nil, fmt.Errorf("%s: wrong number of arguments", fs.Name())
	}
	return pos, nil
}

// errNoChunkType is returned when TYPE is omitted and no chunk_type is configured.
var errNoChunkType = errors.New("no chunk type given and chunk_type is not configured")

// chunkType returns pos[i] when present, otherwise the configured default.
func (a *app) chunkType(pos []string, i int) (string, error) {
	if i < len(pos) {
		return pos[i], nil
	}
	if a.cfg.ChunkType == "" {
		return "", errNoChunkType
	}
	return a.cfg.ChunkType, nil
}

func runEncode(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "encode", "[--output PATH] FILE [TYPE] MESSAGE")
	output := fs.StringP("output", "o", "", "write the result here instead of next to FILE")
	pos, err := parseArgs(fs, args, 2, 3)
	if err != nil {
		return err
	}
	input, message := pos[0], pos[len(pos)-1]
	typText, err := a.chunkType(pos[:len(pos)-1], 1)
	if err != nil {
		return err
	}

	typ, err := pngchunk.ParseTypeCode(typText)
	if err != nil {
		return fmt.Errorf("chunk type %q: %w", typText, err)
	}
	c, err := pngchunk.ReadFile(input, a.parseOptions()...)
	if err != nil {
		return err
	}
	if !typ.IsValid() {
		a.logger.Warn("chunk type has the reserved bit set", "type", typText)
	}

	c.Append(pngchunk.NewChunk(typ, []byte(message)))

	out := *output
	if out == "" {
		out = outputPath(input, a.cfg.EncodeSuffix)
	}
	if err := pngchunk.WriteFile(out, c); err != nil {
		return err
	}
	a.logger.Info("encoded message", "input", input, "output", out, "type", typText, "bytes", len(message))
	fmt.Fprintf(a.stdout, "Png with secret created at: %s\n", out)
	return nil
}

func runDecode(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "decode", "FILE [TYPE]")
	pos, err := parseArgs(fs, args, 1, 2)
	if err != nil {
		return err
	}
	input := pos[0]
	typText, err := a.chunkType(pos, 1)
	if err != nil {
		return err
	}

	c, err := pngchunk.ReadFile(input, a.parseOptions()...)
	if err != nil {
		return err
	}
	chunk, ok := c.ChunkByType(typText)
	if !ok {
		return fmt.Errorf("%w: no %s chunk in %s", pngchunk.ErrChunkNotFound, typText, input)
	}
	msg, err := chunk.Text()
	if err != nil {
		return fmt.Errorf("%s chunk in %s: %w", typText, input, err)
	}
	fmt.Fprintln(a.stdout, msg)
	return nil
}

func runRemove(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "remove", "[--output PATH] FILE [TYPE]")
	output := fs.StringP("output", "o", "", "write the result here instead of next to FILE")
	pos, err := parseArgs(fs, args, 1, 2)
	if err != nil {
		return err
	}
	input := pos[0]
	typText, err := a.chunkType(pos, 1)
	if err != nil {
		return err
	}

	c, err := pngchunk.ReadFile(input, a.parseOptions()...)
	if err != nil {
		return err
	}
	removed, err := c.RemoveFirst(typText)
	if err != nil {
		return fmt.Errorf("%w: no %s chunk in %s", err, typText, input)
	}

	out := *output
	if out == "" {
		out = outputPath(input, a.cfg.RemoveSuffix)
	}
	if err := pngchunk.WriteFile(out, c); err != nil {
		return err
	}
	a.logger.Info("removed chunk", "input", input, "output", out, "type", typText, "bytes", removed.Length())

	if msg, err := removed.Text(); err == nil {
		fmt.Fprintf(a.stdout, "Removed message: %q\n", msg)
	}
	fmt.Fprintf(a.stdout, "Png with secret removed created at: %s\n", out)
	return nil
}

func runPrint(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "print", "FILE...")
	pos, err := parseArgs(fs, args, 1, -1)
	if err != nil {
		return err
	}

	containers, err := pngchunk.LoadAll(ctx, pos, a.parseOptions()...)
	if err != nil {
		return err
	}
	for i, c := range containers {
		if len(pos) > 1 {
			if i > 0 {
				fmt.Fprintln(a.stdout)
			}
			fmt.Fprintf(a.stdout, "==> %s <==\n", pos[i])
		}
		fmt.Fprint(a.stdout, c.String())
	}
	return nil
}

// inspectOutput is the JSON form of an inspect result.
type inspectOutput struct {
	Path         string             `json:"path"`
	Descriptor   ocispec.Descriptor `json:"descriptor"`
	Chunks       int                `json:"chunks"`
	Critical     int                `json:"critical"`
	Ancillary    int                `json:"ancillary"`
	PayloadBytes uint64             `json:"payloadBytes"`
	Types        []string           `json:"types"`
}

func runInspect(_ context.Context, a *app, args []string) error {
	fs := newFlagSet(a, "inspect", "[--json] FILE")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	pos, err := parseArgs(fs, args, 1, 1)
	if err != nil {
		return err
	}
	input := pos[0]

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	result, err := pngchunk.Inspect(data, a.parseOptions()...)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(inspectOutput{
			Path:         input,
			Descriptor:   result.Descriptor(),
			Chunks:       result.ChunkCount(),
			Critical:     result.CriticalCount(),
			Ancillary:    result.AncillaryCount(),
			PayloadBytes: result.PayloadBytes(),
			Types:        result.Types(),
		})
	}

	fmt.Fprintf(a.stdout, "File:      %s\n", input)
	fmt.Fprintf(a.stdout, "Digest:    %s\n", result.Digest())
	fmt.Fprintf(a.stdout, "Size:      %d bytes\n", result.Size())
	fmt.Fprintf(a.stdout, "Chunks:    %d (%d critical, %d ancillary)\n",
		result.ChunkCount(), result.CriticalCount(), result.AncillaryCount())
	fmt.Fprintf(a.stdout, "Payload:   %d bytes\n", result.PayloadBytes())
	for i, typ := range result.Types() {
		fmt.Fprintf(a.stdout, "  %3d  %s\n", i, typ)
	}
	return nil
}
