package bigint_test

import (
	"fmt"

	"github.com/cortenjs/corten/bigint"
)

func ExampleDiv() {
	a, _ := bigint.Parse("-7n")
	b, _ := bigint.Parse("2n")

	q, _ := bigint.Div(a, b)
	r, _ := bigint.Rem(a, b)
	fmt.Println(q.String(), r.String())
	// Output: -3n -1n
}

func ExampleAsUintN() {
	x, _ := bigint.Parse("-1n")
	u, _ := bigint.AsUintN(8, x)
	fmt.Println(u.String())
	// Output: 255n
}
