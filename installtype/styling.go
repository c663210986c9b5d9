package installtype

// Styling enumerates desktop-wide styling assets
type Styling int

const (
	ColorSchemes Styling = iota
	Cursors
	Emoticons
	Fonts
	Icons
	Themes
)

// ParseStyling resolves a token to a Styling variant. Matching is
// case-sensitive. Several window-manager specific theme tokens alias to the
// single Themes variant.
func ParseStyling(token string) (Styling, error) {
	switch token {
	case "color_schemes":
		return ColorSchemes, nil
	case "cursors":
		return Cursors, nil
	case "emoticons":
		return Emoticons, nil
	case "fonts":
		return Fonts, nil
	case "icons":
		return Icons, nil
	case "themes", "xfwm4_themes", "openbox_themes":
		return Themes, nil
	}
	return 0, newNoMatchingInstallTypeError(token)
}

// InstallPath returns the fixed install-path template
func (s Styling) InstallPath() string {
	switch s {
	case ColorSchemes:
		return "$XDG_DATA_HOME/color-schemes"
	case Cursors:
		return "$HOME/.icons"
	case Emoticons:
		return "$XDG_DATA_HOME/emoticons"
	case Fonts:
		return "$HOME/.fonts"
	case Icons:
		return "$XDG_DATA_HOME/icons"
	case Themes:
		return "$HOME/.themes"
	}
	return ""
}

// String returns the canonical token for the variant
func (s Styling) String() string {
	switch s {
	case ColorSchemes:
		return "color_schemes"
	case Cursors:
		return "cursors"
	case Emoticons:
		return "emoticons"
	case Fonts:
		return "fonts"
	case Icons:
		return "icons"
	case Themes:
		return "themes"
	}
	return ""
}

func (Styling) installType() {}
