package ocslink

import (
	"crypto/sha1"
	"fmt"
)

// Keys describes the different ways link keys can be generated
type Keys interface {
	LinkKeyForURIText(uriText string) string
	LinkKey(link *ParsedLink) string
}

// MakeDefaultKeys creates a default key generator for parsed links
func MakeDefaultKeys() Keys {
	result := new(defaultKeys)
	return result
}

type defaultKeys struct {
}

func (k defaultKeys) LinkKeyForURIText(uriText string) string {
	h := sha1.New()
	h.Write([]byte(uriText))
	bs := h.Sum(nil)
	return fmt.Sprintf("%x", bs)
}

// LinkKey hashes the canonical form, so equivalent links key identically
// regardless of how the original text was encoded
func (k defaultKeys) LinkKey(link *ParsedLink) string {
	if link != nil {
		return k.LinkKeyForURIText(link.String())
	}
	return "link_is_nil_in_LinkKey"
}
