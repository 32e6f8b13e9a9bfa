package main

import (
	"fmt"
	"os"

	"tasnim.dev/aws-iam-audit/cmd"
)

func main() {
	if err := cmd.NewAuditCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
