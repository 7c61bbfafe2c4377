package screens

import (
	"fmt"

	"menuvox/internal/host"
	"menuvox/internal/menu"
)

// SettingsSaver receives the "save settings now" forwarding when the
// player leaves the options screen. Fire-and-forget.
type SettingsSaver interface {
	SaveHostSettings(values map[string]string)
}

type Options struct {
	menu.Base
	sim   *host.Sim
	saver SettingsSaver
}

func NewOptions(sim *host.Sim, nav menu.Navigator, saver SettingsSaver) *Options {
	s := &Options{sim: sim, saver: saver}
	s.SetNavigator(nav)
	s.RouteAction("back", "Main Menu")
	return s
}

func (s *Options) Name() string { return "Options" }

func (s *Options) IsVisible() bool { return s.sim.Options.ActiveInHierarchy() }

func (s *Options) Refresh() {
	s.Reset()
	p := s.sim.Options
	s.Add(
		menu.Divider("Audio"),
		menu.FromSlider(asSlider(p.Find("sldMaster")), "master_volume"),
		menu.FromSlider(asSlider(p.Find("sldMusic")), "music_volume"),
		menu.Divider("Display"),
		menu.FromDropdown(asDropdown(p.Find("ddResolution")), "resolution"),
		menu.FromToggle(asToggle(p.Find("tglFullscreen")), "fullscreen"),
		menu.FromToggle(asToggle(p.Find("tglSubtitles")), "subtitles"),
		menu.Divider("Gameplay"),
		menu.FromToggle(asToggle(p.Find("tglAutosave")), "autosave"),
		menu.FromSlider(asSlider(p.Find("sldSpeechRate")), "speech_rate"),
		menu.FromButton(asButton(p.Find("btnBack")), "back"),
	)
}

func (s *Options) ActivationAnnouncement() string {
	settings := 0
	for _, c := range s.Controls() {
		if c.Type != menu.TypeDivider && c.Type != menu.TypeButton {
			settings++
		}
	}
	return menu.CountAnnouncement("Options", settings, "settings")
}

// OnDeactivate forwards the current host option values to the saver.
func (s *Options) OnDeactivate() {
	if s.saver == nil {
		return
	}
	s.saver.SaveHostSettings(map[string]string{
		"master_volume": fmt.Sprintf("%.0f", s.sim.MasterVolume),
		"music_volume":  fmt.Sprintf("%.0f", s.sim.MusicVolume),
		"resolution":    s.sim.Resolution,
		"fullscreen":    fmt.Sprintf("%t", s.sim.Fullscreen),
		"subtitles":     fmt.Sprintf("%t", s.sim.Subtitles),
		"autosave":      fmt.Sprintf("%t", s.sim.Autosave),
		"speech_rate":   fmt.Sprintf("%.0f", s.sim.SpeechRate),
	})
}
