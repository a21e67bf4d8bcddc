package bulkdownload

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/cellportal/internal/models"
)

// ProjectManifestType marks the federated file describing a whole project.
const ProjectManifestType = "Project Manifest"

// DirectoryAll selects every synced directory listing of a study.
const DirectoryAll = "all"

type FederatedFile struct {
	Name     string `json:"name"`
	FileType string `json:"file_type"`
	URL      string `json:"url,omitempty"`
	DRSID    string `json:"drs_id,omitempty"`
}

// FederatedProject groups the files of one external project under the
// folder ShortName.
type FederatedProject struct {
	ShortName string          `json:"short_name"`
	Files     []FederatedFile `json:"files"`
}

// DownloadRequest is one bulk download selection. Either FileIDs or
// Accessions (optionally narrowed by FileTypes) select study files.
type DownloadRequest struct {
	Accessions     []string           `json:"accessions,omitempty"`
	FileTypes      []string           `json:"file_types,omitempty"`
	FileIDs        []string           `json:"file_ids,omitempty"`
	Directory      string             `json:"directory,omitempty"`
	FederatedFiles []FederatedProject `json:"tdr_files,omitempty"`
}

func (r DownloadRequest) Validate() error {
	if len(r.FileIDs) > 0 && len(r.Accessions) > 0 {
		return validationErrorf("supply either file_ids or accessions, not both")
	}
	if len(r.FileIDs) == 0 && len(r.Accessions) == 0 && len(r.FederatedFiles) == 0 {
		return validationErrorf("accessions or file_ids are required")
	}
	if len(r.FileIDs) > 0 && len(r.FileTypes) > 0 {
		return validationErrorf("file_types cannot be combined with file_ids")
	}
	for _, id := range r.FileIDs {
		if _, err := uuid.Parse(id); err != nil {
			return validationErrorf("file_ids must be comma-delimited list of UUIDs")
		}
	}
	// The single-study rule is checked after accessions are resolved.
	if r.Directory != "" && len(r.Accessions) == 0 {
		return validationErrorf("directory requires a study accession")
	}
	for _, p := range r.FederatedFiles {
		if strings.TrimSpace(p.ShortName) == "" {
			return validationErrorf("federated projects require a short_name")
		}
	}
	return nil
}

// ResolveFileTypes turns the requested file type filter into the concrete
// types to query. wantFiles is false for a directory-only ("None") request.
// An empty request selects the defaults.
func ResolveFileTypes(requested []string, defaults []string) (types []string, wantFiles bool, err error) {
	if len(requested) == 0 {
		return append([]string(nil), defaults...), true, nil
	}
	if len(requested) == 1 && requested[0] == models.FileTypeNone {
		return nil, false, nil
	}

	seen := make(map[string]struct{})
	add := func(t string) {
		if !models.IsBulkDownloadType(t) {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	for _, t := range requested {
		if t == models.FileTypeExpression {
			for _, et := range models.ExpressionFileTypes {
				add(et)
			}
			continue
		}
		add(t)
	}
	if len(types) == 0 {
		return nil, false, validationErrorf("no valid file types requested; must be any of: %s",
			strings.Join(models.BulkDownloadTypes, ", "))
	}
	return types, true, nil
}
