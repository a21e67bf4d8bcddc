package bulkdownload

import (
	"fmt"

	"github.com/rohits-web03/cellportal/internal/models"
)

// Location is an object inside a storage bucket.
type Location struct {
	Bucket string
	Object string
}

// FileDescriptor is one object to fetch and the path curl writes it to.
type FileDescriptor interface {
	Location() Location
	OutputPath() string
	OwningStudyID() string
	FileType() string
	Size() int64
}

// StudyFileRef describes a study file.
type StudyFileRef struct {
	File   models.StudyFile
	Bucket string
	Output string
}

func (r StudyFileRef) Location() Location {
	return Location{Bucket: r.Bucket, Object: r.File.BucketLocation()}
}
func (r StudyFileRef) OutputPath() string    { return r.Output }
func (r StudyFileRef) OwningStudyID() string { return r.File.StudyID }
func (r StudyFileRef) FileType() string      { return r.File.FileType }
func (r StudyFileRef) Size() int64           { return r.File.ByteSize() }

// DirectoryEntryRef describes one file of a synced directory listing.
type DirectoryEntryRef struct {
	Entry     models.DirectoryFile
	Directory string
	Study     string
	Bucket    string
	Output    string
}

func (r DirectoryEntryRef) Location() Location {
	return Location{Bucket: r.Bucket, Object: r.Entry.Name}
}
func (r DirectoryEntryRef) OutputPath() string    { return r.Output }
func (r DirectoryEntryRef) OwningStudyID() string { return r.Study }
func (r DirectoryEntryRef) FileType() string      { return "Directory" }
func (r DirectoryEntryRef) Size() int64           { return r.Entry.Size }

// BuildDescriptors resolves bucket and output path of every file and
// directory entry, keeping files first and then directory entries, each in
// input order.
func BuildDescriptors(studies []models.Study, files []models.StudyFile, dirs []models.DirectoryListing) ([]FileDescriptor, error) {
	byID := make(map[string]models.Study, len(studies))
	for _, s := range studies {
		byID[s.ID] = s
	}

	out := make([]FileDescriptor, 0, len(files))
	for _, f := range files {
		study, ok := byID[f.StudyID]
		if !ok {
			return nil, fmt.Errorf("study %s of file %s not loaded", f.StudyID, f.ID)
		}
		out = append(out, StudyFileRef{
			File:   f,
			Bucket: study.BucketID,
			Output: f.BulkDownloadPathname(study.Accession),
		})
	}
	for _, d := range dirs {
		study, ok := byID[d.StudyID]
		if !ok {
			return nil, fmt.Errorf("study %s of directory %s not loaded", d.StudyID, d.Name)
		}
		for _, entry := range d.Files {
			out = append(out, DirectoryEntryRef{
				Entry:     entry,
				Directory: d.Name,
				Study:     study.ID,
				Bucket:    study.BucketID,
				Output:    d.BulkDownloadPathname(study.Accession, entry),
			})
		}
	}
	return out, nil
}

// DistinctStudies returns the studies owning descriptors, in order of first
// appearance.
func DistinctStudies(descriptors []FileDescriptor, studies []models.Study) []models.Study {
	byID := make(map[string]models.Study, len(studies))
	for _, s := range studies {
		byID[s.ID] = s
	}
	seen := make(map[string]struct{})
	var out []models.Study
	for _, d := range descriptors {
		id := d.OwningStudyID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
