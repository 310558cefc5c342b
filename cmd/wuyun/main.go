// Command wuyun prints annual profiles and the six-step reference table.
package main

import "github.com/zapponejosh/wuyun-api/internal/cli"

func main() {
	cli.Execute()
}
