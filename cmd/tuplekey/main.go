// Command tuplekey encodes and decodes order-preserving tuple keys from the
// command line.
package main

import "github.com/arloliu/fdbtuple/cmd/tuplekey/cmd"

func main() {
	cmd.Execute()
}
