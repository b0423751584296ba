// Command unibreak prints the Unicode segmentation breaks of a text.
//
// It reads its input line by line and prints each segment quoted on its own
// output line:
//
//	unibreak -mode w document.txt
//	echo "Hello, 世界" | unibreak -mode g -
//
// The -mode flag selects the breaking algorithm: "g" for grapheme clusters,
// "w" for words, "s" for sentences, and "l" for line breaking units.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Ichigo-Labs/unisegp"
)

func main() {
	log.SetPrefix("unibreak: ")
	log.SetFlags(0)

	mode := flag.String("mode", "w", "breaking algorithm: g (grapheme clusters), w (words), s (sentences), l (line breaking units)")
	tailoring := flag.String("tailoring", "", `line break tailoring: "default", "east-asian", or "loose-kana"`)
	flag.Parse()

	t, err := unisegp.TailoringByName(*tailoring)
	if err != nil {
		log.Fatal(err)
	}

	segment, err := segmenter(*mode, t)
	if err != nil {
		log.Fatal(err)
	}

	input := os.Stdin
	if name := flag.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		input = f
	}

	if err := run(input, os.Stdout, segment); err != nil {
		log.Fatal(err)
	}
}

// segmenter maps a mode letter to a function returning all segments of a
// string.
func segmenter(mode string, t unisegp.Tailoring) (func(string) []string, error) {
	switch mode {
	case "g":
		return func(s string) (segments []string) {
			state := -1
			for len(s) > 0 {
				var cluster string
				cluster, s, _, state = unisegp.FirstGraphemeClusterInString(s, state)
				segments = append(segments, cluster)
			}
			return
		}, nil
	case "w":
		return func(s string) (segments []string) {
			state := -1
			for len(s) > 0 {
				var word string
				word, s, state = unisegp.FirstWordInString(s, state)
				segments = append(segments, word)
			}
			return
		}, nil
	case "s":
		return func(s string) (segments []string) {
			state := -1
			for len(s) > 0 {
				var sentence string
				sentence, s, state = unisegp.FirstSentenceInString(s, state)
				segments = append(segments, sentence)
			}
			return
		}, nil
	case "l":
		return func(s string) (segments []string) {
			state := -1
			for len(s) > 0 {
				var segment string
				segment, s, _, state = unisegp.FirstLineSegmentInStringTailored(s, t, state)
				segments = append(segments, segment)
			}
			return
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func run(r io.Reader, w io.Writer, segment func(string) []string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		for _, s := range segment(scanner.Text() + "\n") {
			if _, err := fmt.Fprintf(w, "%q\n", s); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
