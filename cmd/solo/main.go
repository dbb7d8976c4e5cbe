// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/solo/cmd/solo/cmd"
)

func main() {
	cmd.Execute()
}
