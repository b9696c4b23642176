package main

import "fmt"

// I AM NOT DONE

func main() {
	answer := 42
	fmt.Println("the answer is", answer)
}
