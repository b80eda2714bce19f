// Command rgb565 converts single RGB565 pixels and dumps look-up tables.
//
// Usage:
//
//	rgb565 [-v] [-tables set] decode  [-format f] [-srgb] HEX
//	rgb565 [-v] [-tables set] encode  [-format f] [-srgb] (-rgb r,g,b | -name color)
//	rgb565 [-v] [-tables set] convert -from f -to f HEX
//	rgb565 [-v] [-tables set] tables
//	rgb565 [-v] gen -out dir [-set tables]
//
// HEX is the pixel's two bytes in storage order, e.g. "00f8" for pure red in
// rgb565le.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rgb565"
	"github.com/gogpu/rgb565/lut"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("rgb565: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rgb565", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "log table generation to stderr")
		tables  = fs.String("tables", "default", "look-up tables to use: names, default, all or none, comma-separated")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: rgb565 [flags] decode|encode|convert|tables|gen [args]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		rgb565.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	set, err := lut.ParseSet(*tables)
	if err != nil {
		return err
	}
	conv := rgb565.New(rgb565.WithTables(set))

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "decode":
		return runDecode(conv, rest, stdout, stderr)
	case "encode":
		return runEncode(conv, rest, stdout, stderr)
	case "convert":
		return runConvert(conv, rest, stdout, stderr)
	case "tables":
		return runTables(conv, stdout)
	case "gen":
		return runGen(rest, stdout, stderr)
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
