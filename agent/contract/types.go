package contract

// Role identifies who produced a conversation message. The operator is the
// human on the other side of the session; the controller is the language
// model driving the diagnosis.
type Role string

const (
	RoleOperator   Role = "operator"
	RoleController Role = "controller"
)

// Message is one entry in a session's conversation. The conversation is
// append-only; the only mutation allowed is a full reset.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ToolCall is a directive parsed out of controller output. It lives only for
// the dispatch that created it and is never persisted.
type ToolCall struct {
	Name     string
	RawParam string
}

// ToolResult is the outcome of a tool dispatch, folded back into the
// conversation as a synthetic operator message before the next model call.
type ToolResult struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

func FailedToolResult(msg string) ToolResult {
	return ToolResult{Success: false, Error: msg}
}
