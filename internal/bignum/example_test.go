package bignum

import (
	"context"
	"fmt"
)

// ExampleFactorial computes 5000! and counts its digits without building the
// decimal string.
func ExampleFactorial() {
	f, err := Factorial(5000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(DigitCount(f))
	// Output:
	// 16326
}

// ExampleFormatInt shows the explicit digit limit on base-10 conversion.
func ExampleFormatInt() {
	f, _ := Factorial(5000)
	if _, err := FormatInt(f, 4300); err != nil {
		fmt.Println(err)
	}
	s, _ := FormatInt(f, DefaultMaxDigits)
	fmt.Println(len(s))
	// Output:
	// integer has 16326 decimal digits, exceeds conversion limit of 4300
	// 16326
}

// ExampleFactory selects a backend by name.
func ExampleFactory() {
	backend := NewDefaultFactory().MustGet("split")
	f, _ := backend.Factorial(context.Background(), 20)
	fmt.Println(backend.Name(), f)
	// Output:
	// Binary Splitting 2432902008176640000
}
