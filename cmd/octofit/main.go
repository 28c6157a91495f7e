// Command octofit is the OctoFit Tracker dashboard: terminal views over the
// OctoFit API and a web dashboard served by "octofit serve".
package main

import "github.com/mesh-intelligence/octofit/internal/cli"

func main() {
	cli.Execute()
}
