// widecode - wide-string / UTF-8 transcoding CLI
//
// Usage:
//
//	widecode to-utf8   [--width=16|32] [--order=le|be|auto] [file]
//	widecode from-utf8 [--width=16|32] [--order=le|be] [--bom] [file]
//	widecode version
//
// to-utf8 reads UTF-16/UTF-32 bytes and writes UTF-8 to stdout.
// from-utf8 reads UTF-8 and writes UTF-16/UTF-32 bytes to stdout.
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neumenon/widecode/widecode"
	"github.com/Neumenon/widecode/wire"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	// Parse flags and file argument
	width := widecode.NativeWidth()
	order := wire.LittleEndian
	autoOrder := true
	withBOM := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--width=16":
			width = widecode.Width16
		case arg == "--width=32":
			width = widecode.Width32
		case arg == "--order=le":
			order = wire.LittleEndian
			autoOrder = false
		case arg == "--order=be":
			order = wire.BigEndian
			autoOrder = false
		case arg == "--order=auto":
			autoOrder = true
		case arg == "--bom":
			withBOM = true
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			} else {
				fatal("unknown flag: %s", arg)
			}
		}
	}

	var input io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "to-utf8":
		cmdToUTF8(input, width, order, autoOrder)
	case "from-utf8":
		cmdFromUTF8(input, width, order, withBOM)
	case "version", "-v", "--version":
		fmt.Printf("widecode %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `widecode - wide-string / UTF-8 transcoding CLI

Usage:
  widecode to-utf8   [options] [file]    Convert UTF-16/UTF-32 bytes to UTF-8
  widecode from-utf8 [options] [file]    Convert UTF-8 to UTF-16/UTF-32 bytes
  widecode version                       Print version info

Options:
  --width=16|32       Wide unit width (default: platform native)
  --order=le|be|auto  Byte order; auto sniffs the BOM on to-utf8 (default: auto)
  --bom               Prepend a byte-order mark (from-utf8 only)

If no file is given, reads from stdin.

Examples:
  widecode to-utf8 --width=16 data.utf16le > data.txt
  cat data.txt | widecode from-utf8 --width=16 --order=le --bom > data.utf16le
`)
}

// cmdToUTF8: wide bytes -> UTF-8
func cmdToUTF8(r io.Reader, width widecode.Width, order wire.ByteOrder, auto bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	if auto {
		detected, skip, found := wire.DetectOrder(data, width)
		if found {
			order = detected
			data = data[skip:]
		}
	}

	units, err := wire.Unmarshal(data, width, order)
	if err != nil {
		fatal("unpack %s: %v", width, err)
	}

	utf8Out, err := widecode.EncodeWithOptions(units, widecode.Options{Width: width})
	if err != nil {
		fatal("convert to UTF-8: %v", err)
	}

	if _, err := os.Stdout.Write(utf8Out); err != nil {
		fatal("write output: %v", err)
	}
}

// cmdFromUTF8: UTF-8 -> wide bytes
func cmdFromUTF8(r io.Reader, width widecode.Width, order wire.ByteOrder, withBOM bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}

	units, err := widecode.DecodeWithOptions(data, widecode.Options{Width: width})
	if err != nil {
		fatal("convert from UTF-8: %v", err)
	}

	var out []byte
	if withBOM {
		out, err = wire.MarshalBOM(units, width, order)
	} else {
		out, err = wire.Marshal(units, width, order)
	}
	if err != nil {
		fatal("pack %s: %v", width, err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		fatal("write output: %v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "widecode: "+format+"\n", args...)
	os.Exit(1)
}
