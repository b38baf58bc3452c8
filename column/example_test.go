// SPDX-License-Identifier: MIT
package column_test

import (
	"fmt"

	"github.com/katalvlaran/phat/column"
)

// ExampleVector_Add shows GF(2) addition: shared rows cancel.
func ExampleVector_Add() {
	a := column.NewVector()
	b := column.NewVector()
	a.Set([]column.Index{0, 1})
	b.Set([]column.Index{1, 3})

	_ = a.Add(b, nil)
	fmt.Println(a.AppendTo(nil), "pivot:", a.Max())
	// Output:
	// [0 3] pivot: 3
}

// ExampleBitTreePivot shows a pivot accumulating several columns.
func ExampleBitTreePivot() {
	p := column.NewBitTreePivot()
	p.Reset(1000)
	p.ToggleAll([]column.Index{2, 700})
	p.ToggleAll([]column.Index{700, 999})
	fmt.Println(p.AppendTo(nil), "pivot:", p.Max())
	// Output:
	// [2 999] pivot: 999
}
