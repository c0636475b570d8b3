package main

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

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

type Size int

const (
	Small Size = iota
	Medium
	Large
)

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

type Product struct {
	Name  string
	Color Color
	Size  Size
}

func main() {
	products := []Product{
		{Name: "Apple", Color: Green, Size: Small},
		{Name: "Tree", Color: Green, Size: Large},
		{Name: "House", Color: Blue, Size: Large},
	}

	isGreen := specification.New(func(p Product) bool { return p.Color == Green })
	isLarge := specification.New(func(p Product) bool { return p.Size == Large })
	isBlue := specification.New(func(p Product) bool { return p.Color == Blue })

	fmt.Println("Green products:")
	for p := range specification.Filter(slices.Values(products), isGreen) {
		fmt.Printf(" - %s is %s\n", p.Name, p.Color)
	}

	fmt.Println("Large products:")
	for p := range specification.Filter(slices.Values(products), isLarge) {
		fmt.Printf(" - %s is %s\n", p.Name, p.Size)
	}

	largeBlue, err := specification.And(isBlue, isLarge)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Large blue products:")
	for p := range specification.Filter(slices.Values(products), largeBlue) {
		fmt.Printf(" - %s is %s and %s\n", p.Name, p.Size, p.Color)
	}
}
