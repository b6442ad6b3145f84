package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/hit"
	"folio/internal/nav"
	"folio/internal/overlay"
	"folio/internal/trace"
	"folio/internal/ui/textutil"
)

const pageBody hit.ElementID = "page.body"

// AppModel is the root model: a scrolling single-page portfolio with a
// section bar, a filterable skills section, project cards and the project
// overlay.
type AppModel struct {
	Portfolio  *content.Portfolio
	Shell      *Shell
	Skills     *SkillsView
	Overlay    *ProjectModal // non-nil exactly while Shell.Overlay is active
	Modals     ModalStack
	KeyHandler *KeyHandler
	Focus      *FocusRing
	Logger     *slog.Logger
	Tracer     *trace.Tracer
	Clipboard  func(string) error

	// Status is shown in the footer; StatusIsError renders it in red.
	Status        string
	StatusIsError bool

	viewport   viewport.Model
	width      int
	height     int
	cursor     int // selected project card
	menuCursor int
	lastOffset int
	headerH    int
	navSpans   []navSpan
	layout     pageLayout
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithLogger sets the interaction logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *AppModel) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithTracer sets the interaction tracer. A nil tracer records nothing.
func WithTracer(t *trace.Tracer) Option {
	return func(a *AppModel) { a.Tracer = t }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *AppModel) { a.Clipboard = write }
}

// WithSize sets the initial screen size, before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(a *AppModel) { a.width, a.height = width, height }
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over p.
func NewAppModel(p *content.Portfolio, opts ...Option) *AppModel {
	a := &AppModel{
		Portfolio: p,
		Shell:     NewShell(p.Sections),
		Skills:    NewSkillsView(p.Skills),
		Logger:    slog.New(slog.DiscardHandler),
		Clipboard: clipboard.WriteAll,
		viewport:  viewport.New(80, 20),
		width:     80,
		height:    24,
	}
	a.Focus = NewFocusRing(a.onFocusChange)
	reg := NewKeybindRegistry()
	a.bindKeys(reg)
	a.KeyHandler = NewKeyHandler(reg)
	for _, opt := range opts {
		opt(a)
	}
	a.relayout()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (a *AppModel) bindKeys(reg *KeybindRegistry) {
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC m", msgCmd(ToggleMenuMsg{}), "Section menu")
	reg.Bind("m", msgCmd(ToggleMenuMsg{}))

	for i, s := range a.Portfolio.Sections {
		if i >= 9 {
			break
		}
		n := strconv.Itoa(i + 1)
		jump := msgCmd(JumpSectionMsg{ID: s.ID})
		reg.BindWithDesc("SPC g "+n, jump, s.Name)
		reg.Bind(n, jump)
	}

	reg.BindWithDesc("SPC s v", msgCmd(ToggleSkillsViewMsg{}), "Toggle view")
	reg.BindWithDesc("SPC s /", msgCmd(FocusSearchMsg{}), "Search")
	reg.BindWithDesc("SPC s c", msgCmd(ShowCategoryPickerMsg{}), "Pick category")
	reg.BindWithDesc("SPC s n", msgCmd(CycleCategoryMsg{Delta: 1}), "Next category")
	reg.BindWithDesc("SPC s p", msgCmd(CycleCategoryMsg{Delta: -1}), "Previous category")
	reg.BindWithDesc("SPC s x", msgCmd(ClearFiltersMsg{}), "Clear filters")
	reg.Bind("v", msgCmd(ToggleSkillsViewMsg{}))
	reg.Bind("/", msgCmd(FocusSearchMsg{}))
	reg.Bind("c", msgCmd(ShowCategoryPickerMsg{}))
	reg.Bind("]", msgCmd(CycleCategoryMsg{Delta: 1}))
	reg.Bind("[", msgCmd(CycleCategoryMsg{Delta: -1}))
	reg.Bind("x", msgCmd(ClearFiltersMsg{}))
	reg.Bind("ctrl+r", msgCmd(ClearFiltersMsg{}))
}

// Mode reports where key input goes first.
func (a *AppModel) Mode() AppMode {
	switch {
	case a.Modals.Len() > 0:
		return ModeModal
	case a.Shell.Overlay.Active():
		return ModeOverlay
	case a.Skills.Searching():
		return ModeSearch
	case a.Shell.Menu.Open:
		return ModeMenu
	}
	return ModePage
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.SetWindowTitle(a.Portfolio.Profile.Name + " · Portfolio")
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.relayout()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.Overlay != nil {
			a.Overlay.SetSize(msg.Width, msg.Height)
		}
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case OpenProjectMsg:
		a.openProject(msg.Index, msg.Via)
		return nil
	case CloseOverlayMsg:
		a.closeOverlay(msg.Via)
		return nil
	case JumpSectionMsg:
		a.jump(msg.ID)
		return nil
	case ToggleMenuMsg:
		a.Shell.Menu.Toggle()
		a.menuCursor = a.sectionIndex(a.Shell.ActiveSection())
		return nil
	case ToggleSkillsViewMsg:
		a.Skills.Toggle()
		if !a.Skills.Advanced {
			a.Focus.SetFocus(FocusPage)
		}
		a.Logger.Debug("skills view toggled", "advanced", a.Skills.Advanced)
		return nil
	case FocusSearchMsg:
		a.Focus.SetFocus(FocusSearch)
		return textinput.Blink
	case CycleCategoryMsg:
		a.Skills.Advanced = true
		a.Skills.Filter.CycleCategory(msg.Delta)
		a.filterChanged()
		return nil
	case SetCategoryMsg:
		a.Modals.Pop()
		a.Skills.Advanced = true
		a.Skills.Filter.SetCategory(msg.Category)
		a.filterChanged()
		return nil
	case ClearFiltersMsg:
		a.clearFilters()
		return nil
	case ShowCategoryPickerMsg:
		st := a.Skills.Filter.State()
		a.Modals.Push(NewCategoryPickerModal(a.Skills.Filter.Categories(), st.ActiveCategory))
		return nil
	case DismissModalMsg:
		a.Modals.Pop()
		return nil
	case CopyLinkMsg:
		a.copyLink()
		return nil
	case statusMsg:
		a.setStatus(string(msg), false)
		return nil
	case ContentReloadedMsg:
		if msg.Err != nil {
			a.Logger.Warn("content reload failed", "err", msg.Err)
			a.setStatus(fmt.Sprintf("Reload: %v", msg.Err), true)
			return nil
		}
		a.reload(msg.Portfolio)
		return nil
	}

	if cmd, ok := a.Modals.UpdateTop(msg); ok {
		return cmd
	}
	if a.Skills.Searching() {
		_, cmd := a.Skills.UpdateSearch(msg)
		return cmd
	}
	return nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Modals.Len() > 0 {
		cmd, _ := a.Modals.UpdateTop(msg)
		return cmd
	}
	if a.Shell.Overlay.Active() && a.Overlay != nil {
		_, cmd := a.Overlay.Update(msg)
		return cmd
	}
	if a.Skills.Searching() {
		switch msg.String() {
		case "esc", "enter", "tab", "shift+tab":
			a.Focus.SetFocus(FocusPage)
			return nil
		case "ctrl+r":
			a.clearFilters()
			return nil
		}
		changed, cmd := a.Skills.UpdateSearch(msg)
		if changed {
			a.filterChanged()
		}
		return cmd
	}

	// Keybind system (leader key, SPC-prefixed commands, single-key actions)
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	if a.Shell.Menu.Open {
		return a.handleMenuKey(msg)
	}

	switch msg.String() {
	case "n":
		a.moveCursor(1)
		return nil
	case "N":
		a.moveCursor(-1)
		return nil
	case "enter":
		return msgCmd(OpenProjectMsg{Index: a.cursor, Via: "key"})
	case "tab":
		if a.Skills.Advanced {
			a.Focus.Next()
			return textinput.Blink
		}
		return nil
	case "home", "g":
		a.viewport.GotoTop()
		return nil
	case "end", "G":
		a.viewport.GotoBottom()
		return nil
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

func (a *AppModel) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	sections := a.Portfolio.Sections
	switch msg.String() {
	case "esc":
		a.Shell.Menu.Close()
	case "j", "down":
		if a.menuCursor < len(sections)-1 {
			a.menuCursor++
		}
	case "k", "up":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "enter":
		if a.menuCursor < len(sections) {
			return msgCmd(JumpSectionMsg{ID: sections[a.menuCursor].ID})
		}
	}
	return nil
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Modals.Len() > 0 {
		return nil
	}
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if a.Shell.Overlay.Active() && a.Overlay != nil {
		if !press {
			_, cmd := a.Overlay.Update(msg)
			return cmd
		}
		target, _ := hit.Dispatch(a.Overlay.Regions(), msg.X, msg.Y, a.Shell.Overlay.Listeners())
		if !a.Shell.Overlay.Active() {
			via := "backdrop"
			if target == overlay.CloseButton {
				via = "button"
			}
			a.closeOverlay(via)
		}
		return nil
	}

	if !press {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	root, listeners := a.pageHitMap(&cmd)
	hit.Dispatch(root, msg.X, msg.Y, listeners)
	return cmd
}

// pageHitMap returns the clickable regions of the page and their listeners.
// A listener that fires stores its command in out.
func (a *AppModel) pageHitMap(out *tea.Cmd) (hit.Region, map[hit.ElementID]hit.Listener) {
	root := hit.Region{ID: "page", Bounds: hit.Rect{W: a.width, H: a.height}}
	listeners := make(map[hit.ElementID]hit.Listener)

	for _, s := range a.navSpans {
		id := hit.ElementID("nav." + s.ID)
		root.Children = append(root.Children, hit.Region{ID: id, Bounds: hit.Rect{X: s.X, Y: 0, W: s.W, H: 1}})
		listeners[id] = jumpListener(s.ID, out)
	}

	bodyRect := hit.Rect{Y: a.headerH, W: a.width, H: a.viewport.Height}
	body := hit.Region{ID: pageBody, Bounds: bodyRect}
	for _, c := range a.layout.Cards {
		r := hit.Rect{
			Y: a.headerH + c.Top - a.viewport.YOffset,
			W: a.layout.CardW,
			H: c.Bottom - c.Top + 1,
		}.Intersect(bodyRect)
		if r.Empty() {
			continue
		}
		idx, _ := strconv.Atoi(c.ID)
		id := hit.ElementID("project." + c.ID)
		body.Children = append(body.Children, hit.Region{ID: id, Bounds: r})
		listeners[id] = func(hit.Event) bool {
			*out = msgCmd(OpenProjectMsg{Index: idx, Via: "mouse"})
			return true
		}
	}
	for i, t := range a.Skills.Targets() {
		if a.layout.SkillsTop < 0 {
			break
		}
		r := hit.Rect{
			X: t.X,
			Y: a.headerH + a.layout.SkillsTop + t.Row - a.viewport.YOffset,
			W: t.W,
			H: 1,
		}.Intersect(bodyRect)
		if r.Empty() {
			continue
		}
		id := hit.ElementID("skills." + strconv.Itoa(i))
		body.Children = append(body.Children, hit.Region{ID: id, Bounds: r})
		msg := tea.Msg(ClearFiltersMsg{})
		if t.Category != "" {
			msg = SetCategoryMsg{Category: t.Category}
		}
		listeners[id] = func(hit.Event) bool {
			*out = msgCmd(msg)
			return true
		}
	}
		listeners[pageBody] = func(ev hit.Event) bool {
		a.Shell.Menu.Close()
		return false
	}
	root.Children = append(root.Children, body)

	// The menu is drawn over the top of the body, so it goes last.
	if a.Shell.Menu.Open {
		for i, s := range a.Portfolio.Sections {
			id := hit.ElementID("menu." + s.ID)
			root.Children = append(root.Children, hit.Region{ID: id, Bounds: hit.Rect{Y: 2 + i, W: a.width, H: 1}})
			listeners[id] = jumpListener(s.ID, out)
		}
	}
	return root, listeners
}

func jumpListener(id string, out *tea.Cmd) hit.Listener {
	return func(hit.Event) bool {
		*out = msgCmd(JumpSectionMsg{ID: id})
		return true
	}
}

func (a *AppModel) openProject(i int, via string) {
	if i < 0 || i >= len(a.Portfolio.Projects) {
		return
	}
	p := &a.Portfolio.Projects[i]
	a.cursor = i
	a.Shell.Menu.Close()
	a.Shell.Overlay.Open(p)
	a.Overlay = NewProjectModal(p, a.width, a.height)
	a.Logger.Info("project opened", "project", p.Title, "via", via)
	a.Tracer.Record(trace.EventOpenProject, map[string]string{"project": p.Title, "via": via})
}

// reload swaps in new content, keeping the filter, the active section and
// the open project when they still exist.
func (a *AppModel) reload(p *content.Portfolio) {
	st := a.Skills.Filter.State()
	advanced := a.Skills.Advanced
	search := a.Skills.Search.Value()
	searching := a.Skills.Searching()

	var openTitle string
	if sel := a.Shell.Overlay.Selected(); sel != nil {
		openTitle = sel.Title
	}
	active := a.Shell.ActiveSection()

	a.Portfolio = p
	a.Skills = NewSkillsView(p.Skills)
	a.Skills.Advanced = advanced
	a.Skills.Filter.SetCategory(st.ActiveCategory)
	a.Skills.Filter.SetSearchText(st.SearchText)
	a.Skills.Search.SetValue(search)
	if searching {
		a.Skills.FocusSearch()
	}

	menuOpen := a.Shell.Menu.Open
	a.Shell = NewShell(p.Sections)
	a.Shell.Menu.Open = menuOpen
	if a.sectionExists(active) {
		a.Shell.Spy.Current = active
	}

	reg := NewKeybindRegistry()
	a.bindKeys(reg)
	a.KeyHandler = NewKeyHandler(reg)

	a.cursor = min(a.cursor, max(len(p.Projects)-1, 0))
	a.menuCursor = min(a.menuCursor, max(len(p.Sections)-1, 0))
	a.Overlay = nil
	if pr, ok := p.FindProject(openTitle); ok && openTitle != "" {
		a.Shell.Overlay.Open(pr)
		a.Overlay = NewProjectModal(pr, a.width, a.height)
	}
	a.Logger.Info("content reloaded", "projects", len(p.Projects), "skills", p.SkillCount())
	a.setStatus("Content reloaded", false)
}

func (a *AppModel) sectionExists(id string) bool {
	for _, s := range a.Portfolio.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (a *AppModel) closeOverlay(via string) {
	a.Shell.Overlay.Close()
	if a.Overlay == nil {
		return
	}
	title := a.Overlay.Project.Title
	a.Overlay = nil
	a.Logger.Info("project closed", "project", title, "via", via)
	a.Tracer.Record(trace.EventCloseOverlay, map[string]string{"project": title, "via": via})
}

func (a *AppModel) jump(id string) {
	off, ok := nav.Offset(a.layout.Sections, id)
	if !ok {
		return
	}
	a.viewport.SetYOffset(off)
	a.lastOffset = a.viewport.YOffset
	a.Shell.Jump(id)
	a.Logger.Debug("section jump", "section", id)
	a.Tracer.Record(trace.EventSectionJump, map[string]string{"section": id})
}

func (a *AppModel) moveCursor(delta int) {
	n := len(a.Portfolio.Projects)
	if n == 0 {
		return
	}
	a.cursor = min(max(a.cursor+delta, 0), n-1)
	if a.cursor >= len(a.layout.Cards) {
		return
	}
	c := a.layout.Cards[a.cursor]
	switch {
	case c.Top < a.viewport.YOffset:
		a.viewport.SetYOffset(c.Top)
	case c.Bottom >= a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(c.Bottom - a.viewport.Height + 1)
	}
}

func (a *AppModel) filterChanged() {
	st := a.Skills.Filter.State()
	matches := len(a.Skills.Filter.Filtered())
	a.Logger.Debug("skills filtered", "category", st.ActiveCategory, "search", st.SearchText, "matches", matches)
	a.Tracer.Record(trace.EventFilterChange, map[string]string{
		"category": st.ActiveCategory,
		"search":   st.SearchText,
		"matches":  strconv.Itoa(matches),
	})
}

func (a *AppModel) clearFilters() {
	a.Skills.Clear()
	a.Logger.Info("skill filters cleared")
	a.Tracer.Record(trace.EventFilterClear, nil)
}

func (a *AppModel) copyLink() {
	p := a.Shell.Overlay.Selected()
	url, ok := overlay.CopyTarget(p)
	if !ok {
		a.setStatus("No link for this project", true)
		return
	}
	if err := a.Clipboard(url); err != nil {
		a.Logger.Warn("copy link failed", "project", p.Title, "err", err)
		a.setStatus(fmt.Sprintf("Copy link: %v", err), true)
		return
	}
	a.setStatus("Copied "+url, false)
	a.Tracer.Record(trace.EventCopyLink, map[string]string{"project": p.Title})
}

func (a *AppModel) setStatus(s string, isErr bool) {
	a.Status = s
	a.StatusIsError = isErr
}

func (a *AppModel) onFocusChange(from, to string) {
	if to == FocusSearch {
		a.Skills.FocusSearch()
		return
	}
	a.Skills.Search.Blur()
}

func (a *AppModel) sectionIndex(id string) int {
	for i, s := range a.Portfolio.Sections {
		if s.ID == id {
			return i
		}
	}
	return 0
}

// relayout re-renders the page body and sizes the viewport between header
// and footer. A changed scroll offset feeds the section spy.
func (a *AppModel) relayout() {
	a.layout = renderPage(a.Portfolio, a.Skills, a.cursor, a.width)
	a.headerH = lipgloss.Height(a.renderHeader())
	footerH := lipgloss.Height(a.renderFooter())
	a.viewport.Width = a.width
	a.viewport.Height = max(a.height-a.headerH-footerH, 1)
	a.viewport.SetContent(a.layout.Body)

	if a.viewport.YOffset == a.lastOffset {
		return
	}
	a.lastOffset = a.viewport.YOffset
	if a.Shell.Spy.Observe(a.layout.Sections, a.viewport.YOffset) {
		a.Logger.Debug("active section", "section", a.Shell.ActiveSection())
		a.Tracer.Record(trace.EventSectionActive, map[string]string{"section": a.Shell.ActiveSection()})
	}
}

func (a *AppModel) renderHeader() string {
	bar, spans := renderNavBar(a.Portfolio.Sections, a.Shell.ActiveSection(), a.width)
	a.navSpans = spans
	rows := []string{bar, Styles.Rule.Render(strings.Repeat("─", max(a.width, 1)))}
	if a.Shell.Menu.Open {
		rows = append(rows, renderMenu(a.Portfolio.Sections, a.Shell.ActiveSection(), a.menuCursor))
	}
	return strings.Join(rows, "\n")
}

func (a *AppModel) renderFooter() string {
	var rows []string
	if a.KeyHandler.LeaderWaiting {
		if h := RenderKeybindHelp(a.KeyHandler, a.Mode()); h != "" {
			rows = append(rows, h)
		}
	}
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Danger
		}
		rows = append(rows, style.Render(textutil.Truncate(a.Status, a.width)))
	}
	rows = append(rows, RenderFooterHelp(a.width))
	return strings.Join(rows, "\n")
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Overlay != nil && a.Shell.Overlay.Active() {
		return a.Overlay.View()
	}
	if top, ok := a.Modals.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View(),
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color(ColorDim)),
		)
	}
	return a.renderHeader() + "\n" + a.viewport.View() + "\n" + a.renderFooter()
}
