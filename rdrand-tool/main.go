// rdrand-tool exercises the hardware random number generator.
package main

import "github.com/oasisprotocol/rdrand/rdrand-tool/cmd"

func main() {
	cmd.Execute()
}
