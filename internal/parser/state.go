package parser

// Mode identifies which variant of the parsed input state is active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCommand
	ModeProfile
	ModeScope
	ModeQuery
	ModeGlobal
)

// String returns a short name for logging and debug output.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCommand:
		return "command"
	case ModeProfile:
		return "profile"
	case ModeScope:
		return "scope"
	case ModeQuery:
		return "query"
	case ModeGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// State is the tagged union over the palette's input modes. Exactly one
// variant is active per parse; mode-specific data lives only on its variant
// so illegal combinations (e.g. a scope id while still picking a profile)
// are unrepresentable.
type State interface {
	Mode() Mode
	isState()
}

// Idle is the state before the first keystroke of a palette session.
type Idle struct{}

// Command means the user is typing a leading slash-command name; Filter is
// the partial name used to filter the fixed command options.
type Command struct {
	Filter string
}

// Profile means /search is confirmed and the user is choosing a profile.
type Profile struct {
	Filter string
}

// Scope means a profile is confirmed and the user is choosing a plugin
// scope belonging to it.
type Scope struct {
	ProfileID string
	Filter    string
}

// Query is a scoped free-text search. ProfileID and ScopeID are empty when
// the corresponding picker step was skipped via "All".
type Query struct {
	ProfileID string
	ScopeID   string
	Text      string
}

// Global is bare (non-slash) free text, unscoped.
type Global struct {
	Text string
}

func (Idle) Mode() Mode    { return ModeIdle }
func (Command) Mode() Mode { return ModeCommand }
func (Profile) Mode() Mode { return ModeProfile }
func (Scope) Mode() Mode   { return ModeScope }
func (Query) Mode() Mode   { return ModeQuery }
func (Global) Mode() Mode  { return ModeGlobal }

func (Idle) isState()    {}
func (Command) isState() {}
func (Profile) isState() {}
func (Scope) isState()   {}
func (Query) isState()   {}
func (Global) isState()  {}

// Searchable reports whether the state runs searches (query/global modes).
func Searchable(s State) bool {
	switch s.(type) {
	case Query, Global:
		return true
	default:
		return false
	}
}
