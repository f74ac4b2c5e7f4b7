package condense

// Role identifies the author of an [Event].
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// Event is a single role-tagged message in conversational history.
//
// Events are immutable value types compared by value. They are created by
// the agent control loop, appended to a [State]'s history, and never
// mutated afterwards. Condensers produce new Events (e.g., a synthetic
// summary) rather than modifying existing ones.
type Event struct {
	// Content is the message text.
	Content string

	// Role is the author of the message.
	Role Role
}
