package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Build bool
	Query bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YAMLNAV_DEBUG_PARSE")
	d.Build = boolEnv("YAMLNAV_DEBUG_BUILD")
	d.Query = boolEnv("YAMLNAV_DEBUG_QUERY")
	d.LSP = boolEnv("YAMLNAV_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Query() bool {
	return d.Query
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch args[i].(type) {
		case map[string]any, []any:
			b, err := json.MarshalIndent(args[i], "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(b)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
