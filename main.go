// aznet – Azure network resource CLI
// Normalizes short command parameters into fully-qualified Azure resource
// IDs and request bodies before anything is sent to the management plane.
package main

import (
	"os"

	"github.com/ayeletshpigelman/azure-cli/cmd"
	"github.com/ayeletshpigelman/azure-cli/internal/exitcode"
	"github.com/ayeletshpigelman/azure-cli/internal/output"
	_ "github.com/ayeletshpigelman/azure-cli/schemas"
)

func main() {
	if err := cmd.Execute(); err != nil {
		output.PrintError(err)
		os.Exit(exitcode.Of(err))
	}
}
