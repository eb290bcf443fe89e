// Package parse extracts tool-call directives from controller prose.
//
// The grammar is text-embedded rather than structured: the controller writes
// `TOOL_CALL: name(argument)` anywhere in its reply. Only the first match is
// honored, anything after it is ignored, so an ambiguous reply can never
// cause a double dispatch.
package parse

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/aura-netops/aura/agent/contract"
)

var directivePattern = regexp.MustCompile(`TOOL_CALL:\s*(\w+)\(([^)]+)\)`)

// Directive returns the first tool-call directive in text, if any. The
// argument is trimmed of whitespace and surrounding quotes.
func Directive(text string) (contractx.ToolCall, bool) {
	matches := directivePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return contractx.ToolCall{}, false
	}
	if len(matches) > 1 {
		log.Debug().Int("ignored", len(matches)-1).Msg("multiple tool directives in one reply, honoring first only")
	}

	m := matches[0]
	param := strings.TrimSpace(m[2])
	param = strings.Trim(param, `"`)
	param = strings.Trim(param, `'`)

	return contractx.ToolCall{
		Name:     m[1],
		RawParam: param,
	}, true
}
