package ocslink

import "github.com/amizade/ocslink/installtype"

// ValidateInstallType resolves the link's install type token against the
// registry, probing the category families in their documented priority
// order.
//
// ParseLink deliberately does not perform this check: links with
// unrecognized tokens still parse, and callers opt in to registry
// validation as a separate step.
func (l ParsedLink) ValidateInstallType() (installtype.InstallType, error) {
	resolved, err := installtype.Resolve(l.InstallType)
	if err != nil {
		return nil, newUnknownInstallTypeError(l.InstallType, err)
	}
	return resolved, nil
}
