package main

import "fmt"

// I AM NOT DONE

func greet(name string) string {
	return fmt.Sprintf("hello, %s", name)
}

func main() {
	fmt.Println(greet("gopher"))
}
