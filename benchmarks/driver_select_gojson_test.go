//go:build gojson

package benchmarks_test

import (
	"github.com/reoring/recipeld"
	drv "github.com/reoring/recipeld/source/gojson"
)

func init() {
	recipeld.SetJSONDriver(drv.Driver())
}
