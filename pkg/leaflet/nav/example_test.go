package nav_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
)

func ExampleLoop() {
	loop := nav.NewLoop()

	loop.Post(func() { fmt.Println("show loading") })
	loop.Go(func() func() {
		body := strings.ToUpper("hello")
		return func() { fmt.Println("show", body) }
	})

	_ = loop.Settle(context.Background())
	// Output:
	// show loading
	// show HELLO
}

func ExampleViewState() {
	fmt.Println(nav.ListView())
	fmt.Println(nav.PostView("first-post"))
	fmt.Println(nav.PostView("first-post").IsPost())
	// Output:
	// list
	// post(first-post)
	// true
}
