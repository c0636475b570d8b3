package specification_test

import (
	"fmt"
	"slices"

	"github.com/go-leo/solid/specification"
)

type Color int

const (
	Red Color = iota
	Green
	Blue
)

type Size int

const (
	Small Size = iota
	Medium
	Large
)

type Product struct {
	Name  string
	Color Color
	Size  Size
}

var products = []Product{
	{Name: "Apple", Color: Green, Size: Small},
	{Name: "Tree", Color: Green, Size: Large},
	{Name: "House", Color: Blue, Size: Large},
}

// ExampleFilter lazily filters a product catalog with a leaf specification.
func ExampleFilter() {
	isGreen := specification.New(func(p Product) bool { return p.Color == Green })

	for p := range specification.Filter(slices.Values(products), isGreen) {
		fmt.Println(p.Name, "is green")
	}

	// Output:
	// Apple is green
	// Tree is green
}

// ExampleAnd combines two specifications without modifying either.
func ExampleAnd() {
	isBlue := specification.New(func(p Product) bool { return p.Color == Blue })
	isLarge := specification.New(func(p Product) bool { return p.Size == Large })

	largeBlue, err := specification.And(isBlue, isLarge)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range specification.FilterSlice(products, largeBlue) {
		fmt.Println(p.Name, "is large and blue")
	}

	// Output:
	// House is large and blue
}

// ExampleGt uses an ordered comparison leaf.
func ExampleGt() {
	big := specification.Gt(10)

	fmt.Println(big.IsSatisfiedBy(11))
	fmt.Println(big.IsSatisfiedBy(7))

	// Output:
	// true
	// false
}
