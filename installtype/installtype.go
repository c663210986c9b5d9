// Package installtype maps the symbolic install-type tokens carried by OCS
// links onto filesystem install-path templates.
//
// The taxonomy is a closed set of compile-time constant data split into five
// independent category families: personal media, styling, window-manager
// themes, Qt/KDE desktop assets, and application-specific assets. Tokens
// resolve per family; Resolve probes all five in a fixed priority order for
// callers that don't know the family up front.
//
// Path templates carry shell-style placeholder tokens ($HOME,
// $XDG_DATA_HOME, $APP_DATA, $KDEHOME) which the installer collaborator is
// responsible for expanding.
package installtype

import (
	"fmt"

	"golang.org/x/xerrors"
)

// InstallType is the closed sum of all category family variants. Each
// variant maps to exactly one install-path template.
type InstallType interface {
	fmt.Stringer

	// InstallPath returns the fixed install-path template for the variant.
	// It is a pure, total lookup and never fails.
	InstallPath() string

	installType()
}

// Resolve matches a token against every category family, in priority order:
// PersonalMedia, Styling, WMThemes, QtGeneral, AppSpecific. Each family
// keeps its own case rules, so "MUSIC" resolves while "Themes" does not.
func Resolve(token string) (InstallType, error) {
	if media, err := ParsePersonalMedia(token); err == nil {
		return media, nil
	}
	if styling, err := ParseStyling(token); err == nil {
		return styling, nil
	}
	if theme, err := ParseWMThemes(token); err == nil {
		return theme, nil
	}
	if asset, err := ParseQtGeneral(token); err == nil {
		return asset, nil
	}
	if app, err := ParseAppSpecific(token); err == nil {
		return app, nil
	}
	return nil, newNoMatchingInstallTypeError(token)
}

// ErrorCode uniquely identifies a registry resolution failure class
type ErrorCode string

const (
	NoMatchingInstallTypeErrorCode ErrorCode = "OCSTYPE-0100"
)

// NoMatchingInstallTypeError is used when no known install type matches the
// given token. The full offending token is preserved.
type NoMatchingInstallTypeError struct {
	Token string
	frame xerrors.Frame
}

func newNoMatchingInstallTypeError(token string) NoMatchingInstallTypeError {
	return NoMatchingInstallTypeError{Token: token, frame: xerrors.Caller(1)}
}

// ErrorCode uniquely identifies this failure class
func (e NoMatchingInstallTypeError) ErrorCode() ErrorCode {
	return NoMatchingInstallTypeErrorCode
}

// FormatError will print a simple message to the Printer object. This will be what you see when you Println or use %s/%v in a formatted print statement.
func (e NoMatchingInstallTypeError) FormatError(p xerrors.Printer) error {
	p.Printf("%s no known install type matched the given prompt: %q", NoMatchingInstallTypeErrorCode, e.Token)
	e.frame.Format(p)
	return nil
}

// Format provide backwards compatibility with pre-xerrors package
func (e NoMatchingInstallTypeError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// Error satisfies the Go error contract
func (e NoMatchingInstallTypeError) Error() string {
	return fmt.Sprint(e)
}
