package ocslink

import (
	"net/url"
)

// Link is the public interface for a validated OCS reference which knows
// where its payload should be fetched from
type Link interface {
	OriginalURL() string
	FinalURL() (*url.URL, error)
}

// ParsedLink is the validated result of parsing one ocs:// or ocss:// URI.
// It is constructed exactly once by ParseLink, never mutated afterwards,
// and owned solely by the caller.
type ParsedLink struct {
	RawURI      string   `json:"rawURI"`
	Scheme      Scheme   `json:"scheme"`
	Command     Command  `json:"command"`
	DownloadURL *url.URL `json:"downloadURL"`
	InstallType string   `json:"installType"`
	Filename    *string  `json:"filename,omitempty"`
}

// OriginalURL returns the URI text that was parsed, with no alterations
func (l ParsedLink) OriginalURL() string {
	return l.RawURI
}

// FinalURL returns the fully validated download destination
func (l ParsedLink) FinalURL() (*url.URL, error) {
	return l.DownloadURL, nil
}

// HasFilename returns true if the filename query parameter was supplied,
// even when its value was the empty string
func (l ParsedLink) HasFilename() bool {
	return l.Filename != nil
}

// Equal reports structural equality with another parsed link
func (l *ParsedLink) Equal(other *ParsedLink) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	if l.RawURI != other.RawURI || l.Scheme != other.Scheme || l.Command != other.Command {
		return false
	}
	if l.DownloadURL.String() != other.DownloadURL.String() {
		return false
	}
	if l.InstallType != other.InstallType {
		return false
	}
	if (l.Filename == nil) != (other.Filename == nil) {
		return false
	}
	if l.Filename != nil && *l.Filename != *other.Filename {
		return false
	}
	return true
}
