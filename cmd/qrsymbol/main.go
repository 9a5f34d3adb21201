// Command qrsymbol encodes a string into one or more QR Code symbols
// and writes each as a BMP image.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/vvdqr/qrsymbol"
	"github.com/vvdqr/qrsymbol/coding"
)

var g = struct {
	level      string
	minVersion int
	maxVersion int
	moduleSize int
	fg, bg     string
	charset    string
	structured bool
	bpp24      bool
	outFile    string
}{
	minVersion: 1,
	maxVersion: 40,
	moduleSize: 4,
	level:      "m",
	charset:    "ISO-8859-1",
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR Code symbol generator\nUsage: ", cl.Program(),
		" [options] [string ...]\n\n"+
			"If no string is given, data is read from standard input and the\n"+
			"final newline is stripped.\n\n")
	cl.PrintOptions(w)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.FlagLong(&g.level, "level", 'l',
		"error correction level, lowest to highest", "l|m|q|h")
	getopt.FlagLong(&g.minVersion, "min-version", 0,
		"minimum QR version, 1 to 40", "ver")
	getopt.FlagLong(&g.maxVersion, "max-version", 'v',
		"maximum QR version, 1 to 40", "ver")
	getopt.FlagLong(&g.moduleSize, "scale", 's',
		"device pixels per QR module", "scale")
	getopt.FlagLong(&g.fg, "foreground", 'F',
		"foreground colour as #RRGGBB", "RGB")
	getopt.FlagLong(&g.bg, "background", 'B',
		"background colour as #RRGGBB", "RGB")
	getopt.FlagLong(&g.charset, "charset", 'c',
		"byte mode charset: ISO-8859-1, UTF-8 or Shift-JIS", "charset")
	getopt.FlagLong(&g.structured, "structured-append", 'S',
		"split across structured append symbols if needed")
	getopt.FlagLong(&g.bpp24, "24bpp", '2',
		"render a 24-bit-per-pixel BMP instead of 1bpp")
	getopt.FlagLong(&g.outFile, "output", 'o',
		`output file, or "-" for standard output; with -S, "-01", `+
			`"-02" etc. is appended before the extension`, "file")
	getopt.Parse()
}

func levelFromFlag(s string) (coding.Level, error) {
	i := strings.Index("lmqhLMQH", s)
	if i < 0 || len(s) != 1 {
		return 0, fmt.Errorf("%q: bad error correction level", s)
	}
	return coding.Level(i & 3), nil
}

func main() {
	log.SetFlags(0)
	parseFlags()

	lvl, err := levelFromFlag(g.level)
	if err != nil {
		log.Fatalln(err)
	}
	charset, ok := qrsymbol.ParseCharset(g.charset)
	if !ok {
		log.Fatalf("%q: unrecognized charset", g.charset)
	}

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s = strings.TrimSuffix(strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	cfg := qrsymbol.NewConfig()
	cfg.Level = lvl
	cfg.MinVersion = g.minVersion
	cfg.MaxVersion = g.maxVersion
	cfg.ByteModeCharset = charset
	cfg.AllowStructuredAppend = g.structured

	syms, err := qrsymbol.New(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	if err := syms.AppendString(s); err != nil {
		log.Fatalln(err)
	}

	for i := 0; i < syms.Count(); i++ {
		if err := writeSymbol(syms.Get(i), i, syms.Count()); err != nil {
			log.Fatalln(err)
		}
	}
}

func writeSymbol(sym *qrsymbol.Symbol, i, total int) error {
	var data []byte
	var err error
	if g.bpp24 {
		data, err = sym.Get24BPPDIB(g.moduleSize, g.fg, g.bg)
	} else {
		data, err = sym.Get1BPPDIB(g.moduleSize, g.fg, g.bg)
	}
	if err != nil {
		return err
	}

	if g.outFile == "" || g.outFile == "-" {
		if g.outFile == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			return fmt.Errorf("refusing to write binary BMP data to a terminal; use -o to write to a file or redirect standard output")
		}
		_, err := os.Stdout.Write(data)
		return err
	}
	fn := g.outFile
	if total > 1 {
		ext := ""
		if n := strings.LastIndexByte(fn, '.'); n >= 0 {
			ext = fn[n:]
			fn = fn[:n]
		}
		fn = fmt.Sprintf("%s-%02d%s", fn, i+1, ext)
	}
	return writeFile(fn, data)
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
