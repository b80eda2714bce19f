package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rgb565"
	"github.com/gogpu/rgb565/lut"
)

// formatFlag adapts rgb565.Format to flag.Value.
type formatFlag struct{ f rgb565.Format }

func (v *formatFlag) String() string { return v.f.String() }

func (v *formatFlag) Set(s string) error {
	f, err := rgb565.ParseFormat(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}

func parsePixel(s string) ([2]byte, error) {
	var px [2]byte
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return px, fmt.Errorf("pixel %q: %w", s, err)
	}
	if len(raw) != len(px) {
		return px, fmt.Errorf("pixel %q: want 2 bytes, got %d", s, len(raw))
	}
	copy(px[:], raw)
	return px, nil
}

func parseRGB(s string) (r, g, b uint8, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("rgb %q: want r,g,b", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("rgb %q: %w", s, err)
		}
		ch[i] = uint8(n)
	}
	return ch[0], ch[1], ch[2], nil
}

func runDecode(conv *rgb565.Converter, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := &formatFlag{f: rgb565.FormatRGB565LE}
	fs.Var(format, "format", "pixel layout: rgb565le, rgb565be, bgr565le, bgr565be")
	srgb := fs.Bool("srgb", false, "print sRGB channels instead of linear")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: decode takes one pixel", errUsage)
	}
	px, err := parsePixel(fs.Arg(0))
	if err != nil {
		return err
	}

	var r, g, b uint8
	if *srgb {
		r, g, b = conv.DecodeSRGB888(px, format.f)
	} else {
		r, g, b = conv.DecodeRGB888(px, format.f)
	}
	_, err = fmt.Fprintf(stdout, "%d %d %d\n", r, g, b)
	return err
}

func runEncode(conv *rgb565.Converter, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := &formatFlag{f: rgb565.FormatRGB565LE}
	fs.Var(format, "format", "pixel layout: rgb565le, rgb565be, bgr565le, bgr565be")
	srgb := fs.Bool("srgb", false, "treat input channels as sRGB")
	rgb := fs.String("rgb", "", "decimal channels, e.g. 255,128,0")
	name := fs.String("name", "", "SVG color name, e.g. coral")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r, g, b uint8
	switch {
	case *rgb != "" && *name != "":
		return fmt.Errorf("%w: -rgb and -name are exclusive", errUsage)
	case *rgb != "":
		var err error
		if r, g, b, err = parseRGB(*rgb); err != nil {
			return err
		}
	case *name != "":
		c, ok := colornames.Map[strings.ToLower(*name)]
		if !ok {
			return fmt.Errorf("unknown color name %q", *name)
		}
		r, g, b = c.R, c.G, c.B
	default:
		return fmt.Errorf("%w: encode needs -rgb or -name", errUsage)
	}

	var px [2]byte
	if *srgb {
		px = conv.EncodeSRGB888(r, g, b, format.f)
	} else {
		px = conv.EncodeRGB888(r, g, b, format.f)
	}
	_, err := fmt.Fprintln(stdout, hex.EncodeToString(px[:]))
	return err
}

func runConvert(conv *rgb565.Converter, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := &formatFlag{f: rgb565.FormatRGB565LE}
	to := &formatFlag{f: rgb565.FormatRGB565BE}
	fs.Var(from, "from", "input layout")
	fs.Var(to, "to", "output layout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: convert takes one pixel", errUsage)
	}
	px, err := parsePixel(fs.Arg(0))
	if err != nil {
		return err
	}
	out := conv.Convert(px, from.f, to.f)
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(out[:]))
	return err
}

func runTables(conv *rgb565.Converter, stdout io.Writer) error {
	p := message.NewPrinter(language.English)
	enabled := conv.Tables()
	for _, t := range lut.Tables() {
		state := "off"
		if enabled.Has(t) {
			state = "on"
		}
		if _, err := p.Fprintf(stdout, "%-18s %14d bytes  %s\n", t, t.Size(), state); err != nil {
			return err
		}
	}
	_, err := p.Fprintf(stdout, "enabled: %d bytes\n", enabled.Size())
	return err
}

func runGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output directory")
	setFlag := fs.String("set", "default", "tables to write")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("%w: gen needs -out", errUsage)
	}
	set, err := lut.ParseSet(*setFlag)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, t := range set.Tables() {
		path := filepath.Join(*out, t.String()+".bin")
		n, err := writeTableFile(path, t)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "%s: %d bytes\n", path, n)
	}
	return nil
}

func writeTableFile(path string, t lut.Table) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return lut.WriteTable(f, t)
}
