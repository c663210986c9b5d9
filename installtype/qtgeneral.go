package installtype

// QtGeneral enumerates Qt and KDE desktop-environment assets
type QtGeneral int

const (
	AmarokScripts QtGeneral = iota
	AuroraeThemes
	DekoratorThemes
	KwinEffects
	KwinScripts
	KwinTabbox
	PlasmaDesktopThemes
	PlasmaLookAndFeel
	PlasmaPlasmoids
	QtCurve
	YakuakeSkins
)

// ParseQtGeneral resolves a token to a QtGeneral variant. Matching is
// case-sensitive.
func ParseQtGeneral(token string) (QtGeneral, error) {
	switch token {
	case "amarok_scripts":
		return AmarokScripts, nil
	case "aurorae_themes":
		return AuroraeThemes, nil
	case "dekorator_themes":
		return DekoratorThemes, nil
	case "kwin_effects":
		return KwinEffects, nil
	case "kwin_scripts":
		return KwinScripts, nil
	case "kwin_tabbox":
		return KwinTabbox, nil
	case "plasma_desktopthemes":
		return PlasmaDesktopThemes, nil
	case "plasma_look_and_feel":
		return PlasmaLookAndFeel, nil
	case "plasma_plasmoids":
		return PlasmaPlasmoids, nil
	case "qtcurve":
		return QtCurve, nil
	case "yakuake_skins":
		return YakuakeSkins, nil
	}
	return 0, newNoMatchingInstallTypeError(token)
}

// InstallPath returns the fixed install-path template
func (q QtGeneral) InstallPath() string {
	switch q {
	case AmarokScripts:
		return "$KDEHOME/share/apps/amarok/scripts"
	case AuroraeThemes:
		return "$XDG_DATA_HOME/aurorae/themes"
	case DekoratorThemes:
		return "$XDG_DATA_HOME/deKorator/themes"
	case KwinEffects:
		return "$XDG_DATA_HOME/kwin/effects"
	case KwinScripts:
		return "$XDG_DATA_HOME/kwin/scripts"
	case KwinTabbox:
		return "$XDG_DATA_HOME/kwin/tabbox"
	case PlasmaDesktopThemes:
		return "$XDG_DATA_HOME/plasma/desktoptheme"
	case PlasmaLookAndFeel:
		return "$XDG_DATA_HOME/plasma/look-and-feel"
	case PlasmaPlasmoids:
		return "$XDG_DATA_HOME/plasma/plasmoids"
	case QtCurve:
		return "$XDG_DATA_HOME/QtCurve"
	case YakuakeSkins:
		return "$KDEHOME/share/apps/yakuake/skins"
	}
	return ""
}

// String returns the canonical token for the variant
func (q QtGeneral) String() string {
	switch q {
	case AmarokScripts:
		return "amarok_scripts"
	case AuroraeThemes:
		return "aurorae_themes"
	case DekoratorThemes:
		return "dekorator_themes"
	case KwinEffects:
		return "kwin_effects"
	case KwinScripts:
		return "kwin_scripts"
	case KwinTabbox:
		return "kwin_tabbox"
	case PlasmaDesktopThemes:
		return "plasma_desktopthemes"
	case PlasmaLookAndFeel:
		return "plasma_look_and_feel"
	case PlasmaPlasmoids:
		return "plasma_plasmoids"
	case QtCurve:
		return "qtcurve"
	case YakuakeSkins:
		return "yakuake_skins"
	}
	return ""
}

func (QtGeneral) installType() {}
