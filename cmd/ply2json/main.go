// Command ply2json converts an ASCII PLY file into a JSON object of flat
// per-attribute arrays, e.g. {"vertex_3f": [...], "face": [...]}.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	plyfile "github.com/cobaltgray/go-plyascii"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ply2json", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outPath := fs.String("o", "", "write JSON to this file instead of stdout")
	indent := fs.String("indent", "", "indent JSON output with this string")
	strict := fs.Bool("strict", false, "reject mixed list/scalar properties, repeated elements and trailing data")
	quiet := fs.Bool("q", false, "suppress warnings")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <file.ply>\n\n", fs.Name()),
			writeln(stderr, "Converts an ASCII PLY file to flat JSON arrays."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one PLY file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	if *quiet {
		plyfile.SetLogger(nil)
	} else {
		plyfile.SetLogger(func(format string, v ...any) {
			_ = writef(stderr, "warning: "+format+"\n", v...)
		})
	}

	data, err := os.ReadFile(remaining[0])
	if err != nil {
		_ = writef(stderr, "error reading %s: %v\n", remaining[0], err)
		return 1
	}

	opts := plyfile.Options{StrictProperties: *strict, StrictElements: *strict, StrictTrailing: *strict}
	arrays, err := plyfile.Convert(string(data), opts)
	if err != nil {
		_ = writef(stderr, "%s: %v\n", remaining[0], err)
		return 1
	}

	out, err := encode(arrays, *indent)
	if err != nil {
		_ = writef(stderr, "error encoding JSON: %v\n", err)
		return 1
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, out, 0o644); err != nil {
			_ = writef(stderr, "error writing %s: %v\n", *outPath, err)
			return 1
		}
		return 0
	}
	if _, err := stdout.Write(out); err != nil {
		return 1
	}
	return 0
}

func encode(arrays plyfile.Arrays, indent string) ([]byte, error) {
	raw, err := arrays.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if indent == "" {
		return append(raw, '\n'), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
