package sample_test

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-stats/sample"
)

func ExampleBuffer() {
	b, _ := sample.New(2)
	for _, v := range []float64{3, 1, 2} {
		b.Append(v)
	}
	b.Sort()

	fmt.Println(b.Values())
	fmt.Println(b.Len(), b.Cap(), b.Unused())

	// Output:
	// [1 2 3]
	// 3 4 1
}

func ExampleReadValues() {
	b, _ := sample.New(4)
	_ = sample.ReadValues(strings.NewReader("1 2 end 3"), b)

	fmt.Println(b.Values())

	// Output:
	// [1 2]
}
