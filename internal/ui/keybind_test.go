package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Bubble Tea reports space as " "
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed || cmd == nil {
		t.Fatalf("x: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_MultiKeySequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC g 3", func() tea.Msg { return JumpSectionMsg{ID: "skills"} })
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("g"))
	if !consumed || cmd != nil {
		t.Fatalf("g: consumed=%v cmd=%v", consumed, cmd)
	}
	if got := h.CurrentSeq(); got != "SPC g" {
		t.Errorf("CurrentSeq = %q, want SPC g", got)
	}
	_, cmd = h.Handle(keyMsg("3"))
	if cmd == nil {
		t.Fatal("expected SPC g 3 to resolve")
	}
	if msg, ok := cmd().(JumpSectionMsg); !ok || msg.ID != "skills" {
		t.Errorf("got %#v", cmd())
	}
}

func TestKeyHandler_UnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC g 1", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unknown sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_EscWithoutLeaderFallsThrough(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	if consumed, _ := h.Handle(keyMsg("esc")); consumed {
		t.Error("esc outside leader mode belongs to the views")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestLeaderHints_TopLevelShowsSubmenus(t *testing.T) {
	a := NewAppModel(content.Default())
	hints := a.KeyHandler.Registry.LeaderHints("", ModePage)

	want := map[string]string{
		"g": "Go to section",
		"s": "Skills",
		"m": "Section menu",
		"q": "Quit",
	}
	for k, v := range want {
		if hints[k] != v {
			t.Errorf("hint %q = %q, want %q", k, hints[k], v)
		}
	}
}

func TestLeaderHints_SectionSubmenu(t *testing.T) {
	a := NewAppModel(content.Default())
	hints := a.KeyHandler.Registry.LeaderHints("SPC g", ModePage)

	if len(hints) != len(content.DefaultSections()) {
		t.Fatalf("got %d hints, want one per section: %v", len(hints), hints)
	}
	if hints["3"] != "Skills" {
		t.Errorf(`hint "3" = %q, want Skills`, hints["3"])
	}
}

func TestLeaderHints_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("SPC o", tea.Quit, "Open project", []AppMode{ModePage})

	if _, ok := reg.LeaderHints("", ModePage)["o"]; !ok {
		t.Error("expected o hinted in page mode")
	}
	if _, ok := reg.LeaderHints("", ModeMenu)["o"]; ok {
		t.Error("o should not be hinted in menu mode")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	if got := RenderKeybindHelp(nil, ModePage); got != "" {
		t.Errorf("nil handler: got %q", got)
	}
	a := NewAppModel(content.Default())
	a.KeyHandler.Handle(keyMsg(" "))
	if got := RenderKeybindHelp(a.KeyHandler, ModePage); got == "" {
		t.Error("expected help while leader is waiting")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
