// Package ui implements the command-palette engine: a Bubble Tea model that
// parses the input line on every keystroke, schedules debounced searches
// with token-based cancellation, and routes keyboard input across picker
// modes, result navigation and transient popup menus.
package ui

import (
	"context"
	"time"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/palette/internal/catalog"
	"github.com/oakwood-commons/palette/internal/organize"
	"github.com/oakwood-commons/palette/internal/parser"
	"github.com/oakwood-commons/palette/internal/prefs"
	"github.com/oakwood-commons/palette/internal/search"
)

// LaunchAction is how a result should open in the host workspace.
type LaunchAction string

const (
	LaunchModal     LaunchAction = "modal"
	LaunchWorkspace LaunchAction = "workspace"
	LaunchPin       LaunchAction = "pin"
	LaunchReplace   LaunchAction = "replace"
)

// DefaultDebounce is the delay between the last keystroke and the fetch.
const DefaultDebounce = 150 * time.Millisecond

// Provider supplies the two async capabilities the engine consumes. Both
// may fail; failures surface as status messages and never crash the
// palette.
type Provider interface {
	FetchScopes(ctx context.Context) ([]catalog.Scope, error)
	FetchResults(ctx context.Context, req search.Request) (search.Response, error)
}

// Host is the workspace the palette launches results into.
type Host interface {
	// SelectedPanelID returns the currently selected panel, or "" if none.
	// Gates the Replace action.
	SelectedPanelID() string
	// Launch opens a result. Returning false keeps the palette open (e.g.
	// validation failure); true closes it.
	Launch(res search.Result, action LaunchAction) bool
}

// Model is the palette engine. One instance exists per open palette; all
// mutable state (results, ordering caches, menu state, timers) is owned
// here and discarded on close.
type Model struct {
	provider Provider
	host     Host
	log      logr.Logger
	store    *prefs.Store

	input    textinput.Model
	catalog  *catalog.Catalog
	skip     parser.Skip
	state    parser.State
	sched    *search.Scheduler
	debounce time.Duration

	results     []search.Result // raw, as last received
	ordered     []search.Result // derived per current sort/group
	entries     []organize.Entry
	resultIndex int // cursor into ordered
	optionIndex int // cursor into the picker option list

	loading   bool
	statusMsg string
	statusErr bool

	sortMode  organize.SortMode
	groupMode organize.GroupMode

	menu *Menu // nil when no menu is open

	width, height int

	// Presentation knobs, set by the embedding host before Init.
	NoColor     bool
	Theme       Theme
	ResolveIcon func(search.Result) string
	QuitOnClose bool // standalone binary: closing the palette quits the program
}

type scopesMsg struct {
	scopes []catalog.Scope
	err    error
}

// searchDebounceMsg fires when the debounce delay for one request token
// expires. Stale tokens are dropped in Update, which is what cancels a
// superseded debounce: timers are never tracked individually.
type searchDebounceMsg struct {
	token int
	req   search.Request
}

// searchResultsMsg carries one response. It is applied only while its token
// is still current.
type searchResultsMsg struct {
	token int
	resp  search.Response
	err   error
}

// New builds a palette over the given provider and host. The sort/group
// preference is read from the store immediately and re-read on every open.
func New(provider Provider, host Host, store *prefs.Store, log logr.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to search, / for commands"
	ti.CharLimit = 500
	ti.SetWidth(80)
	ti.Prompt = ""
	ti.Focus()

	m := Model{
		provider: provider,
		host:     host,
		log:      log,
		store:    store,
		input:    ti,
		catalog:  catalog.New(nil),
		sched:    search.NewScheduler(),
		debounce: DefaultDebounce,
		state:    parser.Idle{},
		Theme:    DefaultTheme(),
		width:    80,
		height:   24,
	}
	if store != nil {
		m.sortMode, m.groupMode = store.Load()
	} else {
		m.sortMode, m.groupMode = organize.DefaultSort, organize.DefaultGroup
	}
	return m
}

// SetDebounce overrides the debounce delay; d <= 0 restores the default.
func (m *Model) SetDebounce(d time.Duration) {
	if d <= 0 {
		d = DefaultDebounce
	}
	m.debounce = d
}

// Open resets the engine to a fresh session: empty input, no skips, no
// results, no menus. Preferences are re-read so external changes apply.
func (m *Model) Open() {
	m.input.SetValue("")
	m.input.SetCursor(0)
	m.input.Focus()
	m.skip = parser.Skip{}
	m.results = nil
	m.ordered = nil
	m.entries = nil
	m.resultIndex = 0
	m.optionIndex = 0
	m.loading = false
	m.statusMsg = ""
	m.statusErr = false
	m.menu = nil
	m.sched.Reset()
	if m.store != nil {
		m.sortMode, m.groupMode = m.store.Load()
	}
	m.state = parser.Parse("", m.catalog, m.skip)
}

// Close tears the session down. Any in-flight response is superseded so it
// can never mutate state after close.
func (m *Model) Close() tea.Cmd {
	m.sched.Reset()
	m.menu = nil
	m.results = nil
	m.ordered = nil
	m.entries = nil
	m.loading = false
	if m.QuitOnClose {
		return tea.Quit
	}
	m.Open()
	return nil
}

// State exposes the current parsed state, mainly for tests and the host.
func (m *Model) State() parser.State { return m.state }

// Init starts cursor blinking and the scope fetch.
func (m *Model) Init() tea.Cmd {
	m.Open()
	return tea.Batch(textinput.Blink, m.fetchScopesCmd())
}

func (m *Model) fetchScopesCmd() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		scopes, err := provider.FetchScopes(context.Background())
		return scopesMsg{scopes: scopes, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scopesMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "fetch scopes")
			m.setStatus("could not load search sources", true)
			m.catalog = catalog.New(nil)
			return m, nil
		}
		m.catalog = catalog.New(msg.scopes)
		// Re-derive: profile/scope tokens may resolve differently now.
		m.deriveState()
		return m, m.schedule()

	case searchDebounceMsg:
		if !m.sched.Accept(msg.token) {
			return m, nil
		}
		return m, m.fetchResultsCmd(msg.token, msg.req)

	case searchResultsMsg:
		if !m.sched.Accept(msg.token) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.log.Error(msg.err, "fetch results")
			m.results = nil
			m.refreshOrdering()
			m.setStatus("search failed", true)
			return m, nil
		}
		m.results = msg.resp.Results
		m.refreshOrdering()
		m.resultIndex = 0
		m.setStatus("", false)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(20, m.width-4))
		return m, nil

	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) fetchResultsCmd(token int, req search.Request) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		resp, err := provider.FetchResults(context.Background(), req)
		return searchResultsMsg{token: token, resp: resp, err: err}
	}
}

// deriveState re-parses the input line. Changing mode resets both focus
// cursors; staying in the same mode keeps them.
func (m *Model) deriveState() {
	prev := m.state
	m.state = parser.Parse(m.input.Value(), m.catalog, m.skip)
	if prev == nil || m.state.Mode() != prev.Mode() {
		m.optionIndex = 0
		m.resultIndex = 0
	}
}

// schedule consults the scheduler for the freshly derived state and turns
// its plan into a debounce command or a synchronous clear.
func (m *Model) schedule() tea.Cmd {
	plan := m.sched.Plan(m.state)
	switch plan.Kind {
	case search.PlanClear:
		m.results = nil
		m.refreshOrdering()
		m.resultIndex = 0
		m.loading = false
		return nil
	case search.PlanFetch:
		m.loading = true
		m.setStatus("", false)
		return m.debounceCmd(plan)
	default:
		return nil
	}
}

// debounceCmd waits out the debounce delay then posts the captured request
// and token back verbatim. Timers are never cancelled: supersession relies
// solely on the token check in Update, where an expired older timer's
// message fails Accept and is dropped, so at most one pending timer ever
// matters.
func (m *Model) debounceCmd(plan search.Plan) tea.Cmd {
	d := m.debounce
	return func() tea.Msg {
		time.Sleep(d)
		return searchDebounceMsg{token: plan.Token, req: plan.Request}
	}
}

// refreshOrdering recomputes the derived display sequence and clamps the
// focus cursor to the new length.
func (m *Model) refreshOrdering() {
	m.ordered, m.entries = organize.Organize(m.results, m.sortMode, m.groupMode)
	m.clampResultIndex()
}

func (m *Model) clampResultIndex() {
	if m.resultIndex >= len(m.ordered) {
		m.resultIndex = len(m.ordered) - 1
	}
	if m.resultIndex < 0 {
		m.resultIndex = 0
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m *Model) setSortMode(mode organize.SortMode) {
	m.sortMode = mode
	if m.store != nil {
		m.store.SetSort(mode)
	}
	m.resultIndex = 0
	m.refreshOrdering()
}

func (m *Model) setGroupMode(mode organize.GroupMode) {
	m.groupMode = mode
	if m.store != nil {
		m.store.SetGroup(mode)
	}
	m.resultIndex = 0
	m.refreshOrdering()
}

// focusedResult returns the result under the cursor, or nil when the list
// is empty.
func (m *Model) focusedResult() *search.Result {
	if len(m.ordered) == 0 {
		return nil
	}
	m.clampResultIndex()
	return &m.ordered[m.resultIndex]
}

// launch hands the focused result to the host. Replace without a selected
// panel is a no-op per the action gating.
func (m *Model) launch(res search.Result, action LaunchAction) tea.Cmd {
	if m.host == nil {
		return nil
	}
	if action == LaunchReplace && m.host.SelectedPanelID() == "" {
		return nil
	}
	if !m.host.Launch(res, action) {
		return nil
	}
	return m.Close()
}

// setInput rewrites the input line (picker confirmation or boundary
// backspace), placing the caret at the end, then re-derives and schedules.
// SetCursor takes a rune index.
func (m *Model) setInput(value string) tea.Cmd {
	m.input.SetValue(value)
	m.input.SetCursor(utf8.RuneCountInString(value))
	m.deriveState()
	return m.schedule()
}
