// bench - glyph transcoding benchmark runner
//
// Loads every *.json glyph document in a directory, transcodes them all and
// compares encoded sizes:
//   - JSON (compact rendering of the value graph)
//   - binary frame
//   - binary frame with zstd payload
//
// Output: CSV on stdout (or --csv file) and a markdown summary on stderr.
//
// Usage:
//
//	bench [--workers N] [--csv out.csv] <glyph-dir>
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/madig/readwrite-ufo-glif/codec"
	"github.com/madig/readwrite-ufo-glif/transcode"
	"github.com/madig/readwrite-ufo-glif/ufo"
	"github.com/madig/readwrite-ufo-glif/value"
)

type CaseResult struct {
	Name            string
	JSONBytes       int
	BinaryBytes     int
	CompressedBytes int
}

type Totals struct {
	Glyphs          int
	JSONBytes       int
	BinaryBytes     int
	CompressedBytes int
	Load            time.Duration
	Transcode       time.Duration
	Encode          time.Duration
}

func main() {
	workers := flag.Int("workers", 4, "concurrent transcodes")
	csvPath := flag.String("csv", "", "write CSV here instead of stdout")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bench [--workers N] [--csv out.csv] <glyph-dir>")
		os.Exit(1)
	}

	results, totals, err := run(flag.Arg(0), *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: %v\n", err)
		os.Exit(1)
	}

	var csvOut io.Writer = os.Stdout
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		csvOut = f
	}
	writeCSV(csvOut, results)
	writeMarkdown(os.Stderr, results, totals)
}

func run(dir string, workers int) ([]CaseResult, Totals, error) {
	var totals Totals

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, totals, err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, totals, fmt.Errorf("no *.json glyph documents in %s", dir)
	}

	start := time.Now()
	glyphs := make([]*ufo.Glyph, 0, len(paths))
	for _, p := range paths {
		g, err := ufo.LoadGlyphJSON(p)
		if err != nil {
			return nil, totals, err
		}
		glyphs = append(glyphs, g)
	}
	totals.Load = time.Since(start)

	start = time.Now()
	values, err := transcode.Many(context.Background(), glyphs, workers)
	if err != nil {
		return nil, totals, err
	}
	totals.Transcode = time.Since(start)

	start = time.Now()
	results := make([]CaseResult, 0, len(values))
	for i, v := range values {
		r, err := measure(glyphs[i].Name, v)
		if err != nil {
			return nil, totals, err
		}
		results = append(results, r)
		totals.JSONBytes += r.JSONBytes
		totals.BinaryBytes += r.BinaryBytes
		totals.CompressedBytes += r.CompressedBytes
	}
	totals.Encode = time.Since(start)
	totals.Glyphs = len(results)
	return results, totals, nil
}

func measure(name string, v *value.Value) (CaseResult, error) {
	js, err := value.ToJSON(v)
	if err != nil {
		return CaseResult{}, fmt.Errorf("glyph %q: %w", name, err)
	}
	bin, err := codec.Encode(v, codec.Options{CRC: true})
	if err != nil {
		return CaseResult{}, fmt.Errorf("glyph %q: %w", name, err)
	}
	zbin, err := codec.Encode(v, codec.Options{CRC: true, Compress: true})
	if err != nil {
		return CaseResult{}, fmt.Errorf("glyph %q: %w", name, err)
	}
	return CaseResult{Name: name, JSONBytes: len(js), BinaryBytes: len(bin), CompressedBytes: len(zbin)}, nil
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "glyph,json_bytes,binary_bytes,compressed_bytes")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d\n", r.Name, r.JSONBytes, r.BinaryBytes, r.CompressedBytes)
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, t Totals) {
	fmt.Fprintf(w, "## Glyph transcoding benchmark\n\n")
	fmt.Fprintf(w, "| metric | value |\n|---|---|\n")
	fmt.Fprintf(w, "| glyphs | %d |\n", t.Glyphs)
	fmt.Fprintf(w, "| load | %s |\n", t.Load)
	fmt.Fprintf(w, "| transcode | %s |\n", t.Transcode)
	fmt.Fprintf(w, "| encode (3 forms) | %s |\n", t.Encode)
	fmt.Fprintf(w, "| JSON bytes | %d |\n", t.JSONBytes)
	fmt.Fprintf(w, "| binary bytes | %d (%.1f%% of JSON) |\n", t.BinaryBytes, pct(t.BinaryBytes, t.JSONBytes))
	fmt.Fprintf(w, "| compressed bytes | %d (%.1f%% of JSON) |\n\n", t.CompressedBytes, pct(t.CompressedBytes, t.JSONBytes))

	largest := append([]CaseResult(nil), results...)
	sort.Slice(largest, func(i, j int) bool { return largest[i].JSONBytes > largest[j].JSONBytes })
	fmt.Fprintf(w, "### Largest glyphs\n\n| glyph | JSON | binary | compressed |\n|---|---|---|---|\n")
	for _, r := range largest[:min(10, len(largest))] {
		fmt.Fprintf(w, "| %s | %d | %d | %d |\n", truncateName(r.Name, 32), r.JSONBytes, r.BinaryBytes, r.CompressedBytes)
	}
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func truncateName(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
