package review

import (
	"menuvox/internal/host"
	"menuvox/internal/speech"
)

// BindHooks subscribes the controller to the host's hook bus. Dialog
// show/hide drives sub-mode entry and exit; menu panel transitions are
// deliberately ignored here and resolved by Update's visibility poll,
// so a hook that never fires cannot strand the cursor.
func BindHooks(c *Controller, sim *host.Sim, ann *speech.Announcer) {
	sim.Hooks.PanelShown = func(p *host.Panel) {
		switch p {
		case sim.CombatDialog:
			c.SetCombatPending()
			c.EnterCombatMode()
		case sim.AlertDialog:
			c.EnterNotificationMode()
		case sim.PolicyDialog:
			c.EnterPolicySelectionMode()
		}
	}
	sim.Hooks.PanelHidden = func(p *host.Panel) {
		switch p {
		case sim.CombatDialog:
			c.ExitCombatMode()
		case sim.AlertDialog:
			c.ExitNotificationMode()
		case sim.PolicyDialog:
			c.ExitPolicySelectionMode()
		}
	}
	sim.Hooks.TextPopulated = func(source, text string) {
		if source == "combat" {
			c.SetCombatPending()
		}
		ann.Announce("text/"+source, text, false)
	}
	sim.Hooks.PointerHover = func(w host.Widget, text string) {
		ann.Announce("hover", text, false)
	}
}
