package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// System returns the trimmed base system prompt. The tool catalogue is
// appended by the reasoning loop at call time.
func System() string {
	return strings.TrimSpace(systemRaw)
}
