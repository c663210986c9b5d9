// Package installer turns a validated OCS link into a concrete install
// plan: it expands the registry's path templates against the local
// environment and decides where the downloaded payload should be placed.
// Fetching the payload itself is the client's job.
package installer

import (
	"os"
	"path"
)

// Environment carries the values substituted for the placeholder tokens
// found in install-path templates
type Environment struct {
	Home        string `json:"home"`
	XDGDataHome string `json:"xdgDataHome"`
	AppData     string `json:"appData"`
	KDEHome     string `json:"kdeHome"`
}

// MakeEnvironment creates an environment from the process environment,
// applying the usual fallbacks for unset variables. appName decides the
// $APP_DATA directory, e.g. "amizade" gives $XDG_DATA_HOME/amizade.
func MakeEnvironment(appName string) *Environment {
	result := new(Environment)
	result.Home = os.Getenv("HOME")
	result.XDGDataHome = os.Getenv("XDG_DATA_HOME")
	if result.XDGDataHome == "" {
		result.XDGDataHome = path.Join(result.Home, ".local", "share")
	}
	result.KDEHome = os.Getenv("KDEHOME")
	if result.KDEHome == "" {
		result.KDEHome = path.Join(result.Home, ".kde")
	}
	result.AppData = path.Join(result.XDGDataHome, appName)
	return result
}

// Expand substitutes the placeholder tokens in an install-path template.
// Unknown tokens are left as-is so a template mistake stays visible in the
// resulting path instead of silently collapsing to "".
func (e Environment) Expand(template string) string {
	return os.Expand(template, func(token string) string {
		switch token {
		case "HOME":
			return e.Home
		case "XDG_DATA_HOME":
			return e.XDGDataHome
		case "APP_DATA":
			return e.AppData
		case "KDEHOME":
			return e.KDEHome
		}
		return "$" + token
	})
}
