// Package main is the entry point for tdgen, the schema compiler and
// binding generator.
package main

func main() {
	Execute()
}
