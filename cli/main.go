package main

import (
	"log"

	"github.com/webskel/webskel/cli/cmd"
	"github.com/webskel/webskel/cli/util"
	"github.com/webskel/webskel/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given to
		// panic and resumes normal execution, reporting it as an internal
		// error below.
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
