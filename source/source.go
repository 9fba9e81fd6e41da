// Package source installs the go-json driver as the process-wide default when
// imported for side effects:
//
//	import _ "github.com/reoring/recipeld/source"
package source

import (
	"github.com/reoring/recipeld"
	drvgojson "github.com/reoring/recipeld/source/gojson"
)

// init in a separate package to avoid import cycle in root.
func init() { recipeld.SetJSONDriver(drvgojson.Driver()) }
