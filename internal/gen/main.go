//go:build generate

// This program generates the Unicode property tables of the unisegp package
// from the Unicode Character Database. Run it from the repository root:
//
//	go run ./internal/gen
//
// It fetches the UCD files for the given Unicode version, parses the break
// properties, and overwrites the *properties.go files with sorted tables.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const unicodeVersion = "15.0.0"

// A table describes one generated property file.
type table struct {
	url       string         // UCD source file
	property  string         // property name to filter on, "" for all
	varName   string         // name of the generated Go variable
	fileName  string         // target file
	translate func(string) string
}

var tables = []table{
	{
		url:       ucd("auxiliary/GraphemeBreakProperty.txt"),
		varName:   "graphemeCodePoints",
		fileName:  "graphemeproperties.go",
		translate: prefixed("pr"),
	},
	{
		url:       ucd("auxiliary/WordBreakProperty.txt"),
		varName:   "wordBreakCodePoints",
		fileName:  "wordproperties.go",
		translate: prefixed("pr"),
	},
	{
		url:       ucd("auxiliary/SentenceBreakProperty.txt"),
		varName:   "sentenceBreakCodePoints",
		fileName:  "sentenceproperties.go",
		translate: prefixed("pr"),
	},
	{
		url:       ucd("LineBreak.txt"),
		varName:   "lineBreakCodePoints",
		fileName:  "lineproperties.go",
		translate: prefixed("pr"),
	},
	{
		url:       "https://www.unicode.org/Public/" + unicodeVersion + "/ucd/emoji/emoji-data.txt",
		property:  "Extended_Pictographic",
		varName:   "extendedPictographic",
		fileName:  "emojiproperties.go",
		translate: func(string) string { return "prExtendedPictographic" },
	},
	{
		url:      ucd("DerivedCoreProperties.txt"),
		property: "InCB",
		varName:  "incbCodePoints",
		fileName: "incbproperties.go",
		translate: func(value string) string {
			switch value {
			case "Linker":
				return "incbLinker"
			case "Consonant":
				return "incbConsonant"
			case "Extend":
				return "incbExtend"
			default:
				return "incbNone"
			}
		},
	},
}

func ucd(file string) string {
	return "https://www.unicode.org/Public/" + unicodeVersion + "/ucd/" + file
}

// prefixed translates a UCD property value like "Extended_Pictographic" or
// "ALetter" into a Go constant name with the given prefix.
func prefixed(prefix string) func(string) string {
	return func(value string) string {
		return prefix + strings.ReplaceAll(value, "_", "")
	}
}

// The regular expression for a code point range and its property value.
var linePattern = regexp.MustCompile(`^([0-9A-F]{4,6})(\.\.([0-9A-F]{4,6}))?\s*;\s*([\w-]+)(\s*;\s*(\w+))?\s*#\s*(.+)$`)

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(0)

	for _, t := range tables {
		src, err := generate(t)
		if err != nil {
			log.Fatal(err)
		}

		formatted, err := format.Source([]byte(src))
		if err != nil {
			log.Fatal("gofmt:", err)
		}

		log.Print("Writing to ", t.fileName)
		if err := os.WriteFile(t.fileName, formatted, 0644); err != nil {
			log.Fatal(err)
		}
	}
}

func generate(t table) (string, error) {
	properties, err := parse(t)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `// Code generated via go run ./internal/gen. DO NOT EDIT.

package unisegp

// %s are taken from
// %s
// on %s. See https://www.unicode.org/license.html for the Unicode
// license agreement.
var %s = [][3]int{
`, t.varName, t.url, time.Now().Format("January 2, 2006"), t.varName)

	for _, prop := range properties {
		fmt.Fprintf(&buf, "\t{0x%s, 0x%s, %s}, // %s\n", prop[0], prop[1], t.translate(prop[2]), prop[3])
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

func parse(t table) ([][4]string, error) {
	log.Printf("Parsing %s", t.url)
	res, err := http.Get(t.url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", t.url, res.Status)
	}

	var properties [][4]string

	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines.
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}

		from, to, value, comment, err := parseLine(t, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", num, err)
		}
		if value == "" {
			continue
		}
		properties = append(properties, [4]string{from, to, value, comment})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Avoid overflow during binary search.
	if len(properties) >= 1<<31 {
		return nil, errors.New("too many properties")
	}

	sort.Slice(properties, func(i, j int) bool {
		left, _ := strconv.ParseUint(properties[i][0], 16, 64)
		right, _ := strconv.ParseUint(properties[j][0], 16, 64)
		return left < right
	})

	return properties, nil
}

// parseLine parses one UCD line into a code point range, a property value,
// and a comment. Lines for other properties return an empty value.
func parseLine(t table, line string) (from, to, value, comment string, err error) {
	fields := linePattern.FindStringSubmatch(line)
	if fields == nil {
		err = errors.New("no property found")
		return
	}
	from = fields[1]
	to = fields[3]
	if to == "" {
		to = from
	}
	value = fields[4]
	comment = fields[7]
	if t.property != "" {
		// Two-column files: the first column is the property name and the
		// second, if present, the value.
		if value != t.property {
			value = ""
			return
		}
		if fields[6] != "" {
			value = fields[6]
		}
	}
	return
}
