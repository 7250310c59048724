// Command bevedump decodes a BEVE document and prints a textual dump of its
// value tree to stdout.
//
// It is a thin external collaborator around the beve package: decoding is
// the library's job, argument parsing and the printed projection are the
// CLI's own concern.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/peterbourgon/ff/v3"
	"github.com/pierrec/lz4/v4"

	"github.com/beve-org/beve"
	"github.com/beve-org/beve/decode"
	"github.com/beve-org/beve/value"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "bevedump:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagset := flag.NewFlagSet("bevedump", flag.ExitOnError)
	flIn := flagset.String("in", "", "path to a .beve file (default: stdin)")
	flCompression := flagset.String("compressed", "none", "input framing: none, zstd, lz4")
	flMaxDepth := flagset.Int("max-depth", 1024, "maximum nesting depth before failing")

	if err := ff.Parse(flagset, args, ff.WithEnvVarPrefix("BEVEDUMP")); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	in, err := openInput(*flIn)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := wrapCompression(in, *flCompression)
	if err != nil {
		return err
	}

	v, err := beve.Decode(r, decode.WithMaxDepth(*flMaxDepth))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	dump(os.Stdout, v, 0)

	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return f, nil
}

// wrapCompression wraps in with the matching decompressor when the caller's
// surrounding tooling has already framed the BEVE stream with zstd or lz4,
// a common arrangement the writer side (out of scope for this module)
// produces.
func wrapCompression(in io.Reader, kind string) (io.Reader, error) {
	switch kind {
	case "", "none":
		return in, nil
	case "zstd":
		dec, err := zstd.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}

		return dec.IOReadCloser(), nil
	case "lz4":
		return lz4.NewReader(in), nil
	default:
		return nil, fmt.Errorf("unknown -compressed value %q", kind)
	}
}

func dump(w io.Writer, v value.Value, depth int) {
	indent := func(n int) {
		for i := 0; i < n; i++ {
			fmt.Fprint(w, "  ")
		}
	}

	switch v.Kind {
	case value.KindNull:
		fmt.Fprintln(w, "null")
	case value.KindBool:
		fmt.Fprintln(w, v.Bool)
	case value.KindInt:
		fmt.Fprintf(w, "int%d(%d)\n", v.Width*8, v.Int)
	case value.KindUint:
		fmt.Fprintf(w, "uint%d(%d)\n", v.Width*8, v.Uint)
	case value.KindFloat:
		fmt.Fprintf(w, "float%d(%v)\n", v.Width*8, v.Float)
	case value.KindString:
		fmt.Fprintf(w, "%q\n", v.Str)
	case value.KindObject:
		fmt.Fprintln(w, "{")
		for _, e := range v.Object.Entries {
			indent(depth + 1)
			fmt.Fprintf(w, "%q: ", e.Key)
			dump(w, e.Value, depth+1)
		}
		indent(depth)
		fmt.Fprintln(w, "}")
	case value.KindArray:
		fmt.Fprintln(w, "[")
		for _, e := range v.Array {
			indent(depth + 1)
			dump(w, e, depth+1)
		}
		indent(depth)
		fmt.Fprintln(w, "]")
	case value.KindTypedArray:
		fmt.Fprintf(w, "typed_array(len=%d)\n", v.TypedArray.Len())
	case value.KindStringArray:
		fmt.Fprintf(w, "string_array(len=%d)\n", len(v.StringArray))
	case value.KindMatrix:
		fmt.Fprintf(w, "matrix(%dx%d)\n", v.Matrix.Rows, v.Matrix.Cols)
	case value.KindComplex:
		fmt.Fprintf(w, "complex(%v+%vi)\n", v.Complex.Real, v.Complex.Imag)
	case value.KindComplexArray:
		fmt.Fprintf(w, "complex_array(len=%d)\n", len(v.ComplexArray.Real))
	default:
		fmt.Fprintln(w, "<unknown>")
	}
}
