package parse

import "testing"

func TestDirective(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		tool  string
		param string
		found bool
	}{
		{
			name:  "bare directive",
			text:  "TOOL_CALL: get_cell_kpis(DUB-07)",
			tool:  "get_cell_kpis",
			param: "DUB-07",
			found: true,
		},
		{
			name:  "directive inside prose",
			text:  "Let me check the KPIs.\nTOOL_CALL: get_cell_kpis(DUB-07)\nStanding by.",
			tool:  "get_cell_kpis",
			param: "DUB-07",
			found: true,
		},
		{
			name:  "double quoted parameter",
			text:  `TOOL_CALL: measure_link_latency("DUB-07-FIBER")`,
			tool:  "measure_link_latency",
			param: "DUB-07-FIBER",
			found: true,
		},
		{
			name:  "single quoted parameter",
			text:  "TOOL_CALL: measure_link_latency('DUB-07-NTN')",
			tool:  "measure_link_latency",
			param: "DUB-07-NTN",
			found: true,
		},
		{
			name:  "whitespace around parameter",
			text:  "TOOL_CALL: get_cell_kpis(  DUB-07  )",
			tool:  "get_cell_kpis",
			param: "DUB-07",
			found: true,
		},
		{
			name:  "no space after colon",
			text:  "TOOL_CALL:initiate_ntn_failover(DUB-07)",
			tool:  "initiate_ntn_failover",
			param: "DUB-07",
			found: true,
		},
		{
			name:  "first of several directives wins",
			text:  "TOOL_CALL: get_cell_kpis(DUB-07)\nTOOL_CALL: measure_link_latency(DUB-07-FIBER)",
			tool:  "get_cell_kpis",
			param: "DUB-07",
			found: true,
		},
		{
			name:  "plain prose",
			text:  "All KPIs are nominal, nothing to do.",
			found: false,
		},
		{
			name:  "empty parameter list never matches",
			text:  "TOOL_CALL: get_cell_kpis()",
			found: false,
		},
		{
			name:  "mention without call syntax",
			text:  "I could use TOOL_CALL here but I won't.",
			found: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call, ok := Directive(tc.text)
			if ok != tc.found {
				t.Fatalf("found=%v, want %v", ok, tc.found)
			}
			if !tc.found {
				return
			}
			if call.Name != tc.tool {
				t.Errorf("tool=%q, want %q", call.Name, tc.tool)
			}
			if call.RawParam != tc.param {
				t.Errorf("param=%q, want %q", call.RawParam, tc.param)
			}
		})
	}
}
