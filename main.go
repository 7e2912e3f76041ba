package main

import "github.com/123ang/expiry-alert-cli/cmd/fresh"

func main() {
	fresh.Execute()
}
