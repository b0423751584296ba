package unisegp

import "bufio"

// ScanGraphemes is a [bufio.SplitFunc] which tokenizes a stream into grapheme
// clusters, suitable for [bufio.Scanner.Split]. Each token returned by the
// scanner is one grapheme cluster.
var ScanGraphemes bufio.SplitFunc = scanGraphemes

// ScanWords is a [bufio.SplitFunc] which tokenizes a stream into words
// according to the word boundary rules of [UAX #29]. Whitespace and
// punctuation between words form their own tokens.
//
// [UAX #29]: https://unicode.org/reports/tr29/
var ScanWords bufio.SplitFunc = scanWords

// ScanSentences is a [bufio.SplitFunc] which tokenizes a stream into
// sentences according to the sentence boundary rules of [UAX #29].
//
// [UAX #29]: https://unicode.org/reports/tr29/
var ScanSentences bufio.SplitFunc = scanSentences

// ScanLineSegments is a [bufio.SplitFunc] which tokenizes a stream into line
// segments, that is, the atomic units between line break opportunities as
// defined by [UAX #14] under the default tailoring.
//
// [UAX #14]: https://unicode.org/reports/tr14/
var ScanLineSegments bufio.SplitFunc = scanLineSegments

func scanGraphemes(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	cluster, rest, _, _ := FirstGraphemeCluster(data, -1)
	if len(rest) == 0 && !atEOF {
		// The cluster may extend past the end of the buffer, request more data.
		return 0, nil, nil
	}
	return len(cluster), cluster, nil
}

func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	word, rest, _ := FirstWord(data, -1)
	if len(rest) == 0 && !atEOF {
		return 0, nil, nil
	}
	return len(word), word, nil
}

func scanSentences(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	sentence, rest, _ := FirstSentence(data, -1)
	if len(rest) == 0 && !atEOF {
		return 0, nil, nil
	}
	return len(sentence), sentence, nil
}

func scanLineSegments(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	segment, rest, _, _ := FirstLineSegment(data, -1)
	if len(rest) == 0 && !atEOF {
		return 0, nil, nil
	}
	return len(segment), segment, nil
}
