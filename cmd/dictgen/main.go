// Command dictgen builds the embedded English word-list files consumed
// by internal/dict from a plain newline-separated word list. Output is
// written as internal/dict/data/lenL.bin for every length in range.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vietkey/goviet-core/internal/dict"
)

func main() {
	input := flag.String("input", "", "path to a newline-separated word list")
	outDir := flag.String("out", "internal/dict/data", "output directory for lenL.bin files")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "dictgen: -input is required")
		os.Exit(1)
	}

	byLen := make(map[int][]string)
	if err := readWords(*input, byLen); err != nil {
		fmt.Fprintln(os.Stderr, "dictgen:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "dictgen:", err)
		os.Exit(1)
	}

	for l := dict.MinWordLen; l <= dict.MaxWordLen; l++ {
		words := byLen[l]

		recs := make(map[string][]byte, len(words))
		encoded := words[:0]
		for _, w := range words {
			rec, ok := encodeRecord(w)
			if !ok {
				continue
			}
			recs[w] = rec
			encoded = append(encoded, w)
		}
		words = encoded

		// Dictionary.Contains binary-searches on the encoded record
		// bytes (QWERTY row-scan order, not alphabetical), so the
		// records on disk must be sorted the same way.
		sort.Slice(words, func(i, j int) bool {
			return compareRecords(recs[words[i]], recs[words[j]]) < 0
		})
		words = dedupe(words)

		var buf []byte
		for _, w := range words {
			buf = append(buf, recs[w]...)
		}

		path := filepath.Join(*outDir, fmt.Sprintf("len%d.bin", l))
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "dictgen:", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d words, %d bytes\n", path, len(words), len(buf))
	}
}

func readWords(path string, byLen map[int][]string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" || strings.ContainsAny(w, "'-") {
			continue
		}
		if len(w) < dict.MinWordLen || len(w) > dict.MaxWordLen {
			continue
		}
		byLen[len(w)] = append(byLen[len(w)], w)
	}
	return scanner.Err()
}

func encodeRecord(word string) ([]byte, bool) {
	out := make([]byte, 0, len(word)*2)
	for _, r := range word {
		code, ok := dict.EncodeKey(r)
		if !ok {
			return nil, false
		}
		out = append(out, byte(code), byte(code>>8))
	}
	return out, true
}

func compareRecords(a, b []byte) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func dedupe(words []string) []string {
	out := words[:0]
	var prev string
	for i, w := range words {
		if i > 0 && w == prev {
			continue
		}
		out = append(out, w)
		prev = w
	}
	return out
}
