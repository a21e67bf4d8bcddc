package models

import (
	"path"
	"time"
)

// DirectoryListing is a synced folder of loose files inside a study bucket.
type DirectoryListing struct {
	Model
	StudyID               string          `json:"studyId" gorm:"type:uuid;index;not null"`
	Name                  string          `json:"name" gorm:"not null"`
	FileType              string          `json:"fileType"`
	SpeciesScientificName string          `json:"speciesScientificName"`
	SyncStatus            bool            `json:"syncStatus" gorm:"default:false"`
	Files                 []DirectoryFile `json:"files" gorm:"foreignKey:DirectoryListingID"`
	CreatedAt             time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt             time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

type DirectoryFile struct {
	Model
	DirectoryListingID string `json:"directoryListingId" gorm:"type:uuid;index;not null"`
	Name               string `json:"name" gorm:"not null"` // bucket-relative object path
	Size               int64  `json:"size"`
	Position           int    `json:"position"`
}

func (d *DirectoryListing) TotalBytes() int64 {
	var total int64
	for _, f := range d.Files {
		total += f.Size
	}
	return total
}

// BulkDownloadFolder is the directory-relative path of file; files of the
// bucket root listing ("/") have no folder prefix.
func (d *DirectoryListing) BulkDownloadFolder(file DirectoryFile) string {
	base := path.Base(file.Name)
	if d.Name == "/" || d.Name == "" {
		return base
	}
	return path.Join(d.Name, base)
}

func (d *DirectoryListing) BulkDownloadPathname(accession string, file DirectoryFile) string {
	return path.Join(accession, d.BulkDownloadFolder(file))
}
