package unisegp_test

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Ichigo-Labs/unisegp"
)

func ExampleGraphemeClusterCount() {
	n := unisegp.GraphemeClusterCount("🇩🇪🏳️‍🌈")
	fmt.Println(n)
	// Output: 2
}

func ExampleFirstGraphemeCluster() {
	b := []byte("🇩🇪🏳️‍🌈!")
	state := -1
	var c []byte
	for len(b) > 0 {
		var width int
		c, b, width, state = unisegp.FirstGraphemeCluster(b, state)
		fmt.Println(string(c), width)
	}
	// Output: 🇩🇪 2
	//🏳️‍🌈 2
	//! 1
}

func ExampleFirstGraphemeClusterInString() {
	str := "🇩🇪🏳️‍🌈!"
	state := -1
	var c string
	for len(str) > 0 {
		var width int
		c, str, width, state = unisegp.FirstGraphemeClusterInString(str, state)
		fmt.Println(c, width)
	}
	// Output: 🇩🇪 2
	//🏳️‍🌈 2
	//! 1
}

func ExampleFirstWord() {
	b := []byte("Hello, world!")
	state := -1
	var c []byte
	for len(b) > 0 {
		c, b, state = unisegp.FirstWord(b, state)
		fmt.Printf("(%s)\n", string(c))
	}
	// Output: (Hello)
	//(,)
	//( )
	//(world)
	//(!)
}

func ExampleFirstWordInString() {
	str := "Hello, world!"
	state := -1
	var c string
	for len(str) > 0 {
		c, str, state = unisegp.FirstWordInString(str, state)
		fmt.Printf("(%s)\n", c)
	}
	// Output: (Hello)
	//(,)
	//( )
	//(world)
	//(!)
}

func ExampleFirstSentenceInString() {
	str := "This is sentence one. This is sentence two."
	state := -1
	var c string
	for len(str) > 0 {
		c, str, state = unisegp.FirstSentenceInString(str, state)
		fmt.Printf("(%s)\n", c)
	}
	// Output: (This is sentence one. )
	//(This is sentence two.)
}

func ExampleFirstLineSegmentInString() {
	str := "First line.\nSecond line."
	state := -1
	var c string
	for len(str) > 0 {
		var breakType int
		c, str, breakType, state = unisegp.FirstLineSegmentInString(str, state)
		fmt.Printf("(%s) %v\n", c, breakType == unisegp.LineMustBreak)
	}
	// Output: (First ) false
	//(line.
	//) true
	//(Second ) false
	//(line.) true
}

func ExampleGraphemes() {
	g := unisegp.NewGraphemes("👍🏼!")
	for g.Next() {
		fmt.Println(g.Str())
	}
	// Output: 👍🏼
	//!
}

func ExampleStepString() {
	str := "ab cd"
	state := -1
	var c string
	for len(str) > 0 {
		var boundaries int
		c, str, boundaries, state = unisegp.StepString(str, state)
		fmt.Print(c)
		if boundaries&unisegp.MaskWord != 0 {
			fmt.Print("|")
		}
	}
	fmt.Println()
	// Output: ab| |cd|
}

func ExampleStringWidth() {
	fmt.Println(unisegp.StringWidth("Hello, 世界"))
	// Output: 11
}

func ExampleScanWords() {
	scanner := bufio.NewScanner(strings.NewReader("Time flies."))
	scanner.Split(unisegp.ScanWords)
	for scanner.Scan() {
		fmt.Printf("(%s)\n", scanner.Text())
	}
	// Output: (Time)
	//( )
	//(flies)
	//(.)
}
