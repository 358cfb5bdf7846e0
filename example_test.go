package litweave_test

import (
	"fmt"

	litweave "github.com/averel/go-litweave"
)

func ExampleExtractor_Extract() {
	src := "// # Greeting\n" +
		"// A first look at output capture.\n" +
		"println(\"hi\")\n"

	md, err := litweave.NewExtractor().Extract(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(md)
	// Output:
	// # Greeting
	// A first look at output capture.
	//
	// ```go
	// println("hi")
	// ```
}
