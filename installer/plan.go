package installer

import (
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/amizade/ocslink"
	"github.com/amizade/ocslink/installtype"
)

const defaultDirPerm os.FileMode = 0755

// Plan describes where a link's payload belongs on disk once downloaded
type Plan struct {
	Link        *ocslink.ParsedLink     `json:"link"`
	InstallType installtype.InstallType `json:"installType"`
	TargetDir   string                  `json:"targetDir"`
	Filename    string                  `json:"filename"`
}

// MakePlan resolves the link's install type and expands its path template
// against the given environment. A link whose type the registry does not
// recognize cannot be planned.
func MakePlan(link *ocslink.ParsedLink, env *Environment) (*Plan, error) {
	resolved, err := link.ValidateInstallType()
	if err != nil {
		return nil, err
	}

	plan := new(Plan)
	plan.Link = link
	plan.InstallType = resolved
	plan.TargetDir = env.Expand(resolved.InstallPath())
	plan.Filename = effectiveFilename(link)
	return plan, nil
}

// effectiveFilename prefers the link's explicit filename; an absent or
// empty filename falls back to the last segment of the download URL's path
func effectiveFilename(link *ocslink.ParsedLink) string {
	if link.Filename != nil && *link.Filename != "" {
		return *link.Filename
	}
	return path.Base(link.DownloadURL.Path)
}

// TargetPath returns the full destination path for the downloaded payload
func (p Plan) TargetPath() string {
	return path.Join(p.TargetDir, p.Filename)
}

// EnsureTargetDir creates the plan's target directory on the given
// filesystem if it does not exist yet
func (p Plan) EnsureTargetDir(fs afero.Fs) error {
	if err := fs.MkdirAll(p.TargetDir, defaultDirPerm); err != nil {
		return err
	}
	if _, err := fs.Stat(p.TargetDir); err != nil {
		return err
	}
	return nil
}
