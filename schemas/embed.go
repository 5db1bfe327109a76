// Package schemas embeds the JSON Schema for aznet.yaml and registers it
// with the config package on import. Entry points import this package with
// a blank identifier: import _ "github.com/ayeletshpigelman/azure-cli/schemas"
package schemas

import (
	"embed"

	"github.com/ayeletshpigelman/azure-cli/internal/config"
)

//go:embed aznet-v1.schema.json
var fs embed.FS

func init() {
	data, err := fs.ReadFile("aznet-v1.schema.json")
	if err != nil {
		panic("schemas: failed to read embedded aznet-v1.schema.json: " + err.Error())
	}
	config.SetSchema(data)
}
