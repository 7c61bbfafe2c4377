package host

// Hooks is the write channel from the host into the accessibility
// layer, standing in for runtime method patches: the host calls these
// when panels appear, labels repopulate, or the pointer hovers a
// widget. All callbacks run synchronously on the host frame.
type Hooks struct {
	PanelShown    func(panel *Panel)
	PanelHidden   func(panel *Panel)
	TextPopulated func(source, text string)
	PointerHover  func(w Widget, text string)
}

func (h *Hooks) emitPanelShown(p *Panel) {
	if h != nil && h.PanelShown != nil {
		h.PanelShown(p)
	}
}

func (h *Hooks) emitPanelHidden(p *Panel) {
	if h != nil && h.PanelHidden != nil {
		h.PanelHidden(p)
	}
}

func (h *Hooks) emitText(source, text string) {
	if h != nil && h.TextPopulated != nil {
		h.TextPopulated(source, text)
	}
}

// EmitHover is public because hover originates from pointer movement
// the simulation does not model; the harness raises it directly.
func (h *Hooks) EmitHover(w Widget, text string) {
	if h != nil && h.PointerHover != nil {
		h.PointerHover(w, text)
	}
}
