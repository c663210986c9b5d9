package installtype

// WMThemes enumerates window-manager and shell theme assets
type WMThemes int

const (
	CairoClockThemes WMThemes = iota
	CinnamonApplets
	CinnamonDesklets
	CinnamonExtensions
	EmeraldThemes
	EnlightenmentBackgrounds
	EnlightenmentThemes
	FluxboxStyles
	GnomeShellExtensions
	IceWMThemes
	PekWMThemes
)

// ParseWMThemes resolves a token to a WMThemes variant. Matching is
// case-sensitive.
func ParseWMThemes(token string) (WMThemes, error) {
	switch token {
	case "cairo_clock_themes":
		return CairoClockThemes, nil
	case "cinnamon_applets":
		return CinnamonApplets, nil
	case "cinnamon_desklets":
		return CinnamonDesklets, nil
	case "cinnamon_extensions":
		return CinnamonExtensions, nil
	case "emerald_themes":
		return EmeraldThemes, nil
	case "enlightenment_backgrounds":
		return EnlightenmentBackgrounds, nil
	case "enlightenment_themes":
		return EnlightenmentThemes, nil
	case "fluxbox_styles":
		return FluxboxStyles, nil
	case "gnome_shell_extensions":
		return GnomeShellExtensions, nil
	case "icewm_themes":
		return IceWMThemes, nil
	case "pekwm_themes":
		return PekWMThemes, nil
	}
	return 0, newNoMatchingInstallTypeError(token)
}

// InstallPath returns the fixed install-path template
func (w WMThemes) InstallPath() string {
	switch w {
	case CairoClockThemes:
		return "$HOME/.cairo-clock/themes"
	case CinnamonApplets:
		return "$XDG_DATA_HOME/cinnamon/applets"
	case CinnamonDesklets:
		return "$XDG_DATA_HOME/cinnamon/desklets"
	case CinnamonExtensions:
		return "$XDG_DATA_HOME/cinnamon/extensions"
	case EmeraldThemes:
		return "$HOME/.emerald/themes"
	case EnlightenmentBackgrounds:
		return "$HOME/.e/e/backgrounds"
	case EnlightenmentThemes:
		return "$HOME/.e/e/themes"
	case FluxboxStyles:
		return "$HOME/.fluxbox/styles"
	case GnomeShellExtensions:
		return "$XDG_DATA_HOME/gnome-shell/extensions"
	case IceWMThemes:
		return "$HOME/.icewm/themes"
	case PekWMThemes:
		return "$HOME/.pekwm/themes"
	}
	return ""
}

// String returns the canonical token for the variant
func (w WMThemes) String() string {
	switch w {
	case CairoClockThemes:
		return "cairo_clock_themes"
	case CinnamonApplets:
		return "cinnamon_applets"
	case CinnamonDesklets:
		return "cinnamon_desklets"
	case CinnamonExtensions:
		return "cinnamon_extensions"
	case EmeraldThemes:
		return "emerald_themes"
	case EnlightenmentBackgrounds:
		return "enlightenment_backgrounds"
	case EnlightenmentThemes:
		return "enlightenment_themes"
	case FluxboxStyles:
		return "fluxbox_styles"
	case GnomeShellExtensions:
		return "gnome_shell_extensions"
	case IceWMThemes:
		return "icewm_themes"
	case PekWMThemes:
		return "pekwm_themes"
	}
	return ""
}

func (WMThemes) installType() {}
