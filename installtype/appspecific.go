package installtype

// AppSpecific enumerates assets belonging to one particular application
type AppSpecific int

const (
	NautilusScripts AppSpecific = iota
)

// ParseAppSpecific resolves a token to an AppSpecific variant. Matching is
// case-sensitive.
func ParseAppSpecific(token string) (AppSpecific, error) {
	switch token {
	case "nautilus_scripts":
		return NautilusScripts, nil
	}
	return 0, newNoMatchingInstallTypeError(token)
}

// InstallPath returns the fixed install-path template
func (a AppSpecific) InstallPath() string {
	switch a {
	case NautilusScripts:
		return "$XDG_DATA_HOME/nautilus/scripts"
	}
	return ""
}

// String returns the canonical token for the variant
func (a AppSpecific) String() string {
	switch a {
	case NautilusScripts:
		return "nautilus_scripts"
	}
	return ""
}

func (AppSpecific) installType() {}
