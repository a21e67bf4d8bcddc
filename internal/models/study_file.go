package models

import (
	"path"
	"time"
)

type ExpressionFileInfo struct {
	IsRawCounts                *bool  `json:"isRawCounts"`
	LibraryPreparationProtocol string `json:"libraryPreparationProtocol"`
	Units                      string `json:"units"`
	BiosampleInputType         string `json:"biosampleInputType"`
	Modality                   string `json:"modality"`
}

func (e ExpressionFileInfo) IsZero() bool {
	return e.IsRawCounts == nil && e.LibraryPreparationProtocol == "" && e.Units == "" &&
		e.BiosampleInputType == "" && e.Modality == ""
}

type StudyFile struct {
	Model
	StudyID        string `json:"studyId" gorm:"type:uuid;index;not null"`
	Name           string `json:"name" gorm:"not null"`
	UploadFileName string `json:"uploadFileName" gorm:"not null"`
	FileType       string `json:"fileType" gorm:"index;not null"`
	UploadFileSize *int64 `json:"uploadFileSize"`
	// Object path when the file lives somewhere other than its upload name.
	RemoteLocation string `json:"remoteLocation"`
	// Externally hosted sequence data is never part of a bulk download.
	HumanFastqURL     string `json:"humanFastqUrl"`
	QueuedForDeletion bool   `json:"queuedForDeletion" gorm:"default:false"`

	SpeciesScientificName   string             `json:"speciesScientificName"`
	GenomeAssemblyName      string             `json:"genomeAssemblyName"`
	GenomeAssemblyAccession string             `json:"genomeAssemblyAccession"`
	GenomeAnnotationName    string             `json:"genomeAnnotationName"`
	ExpressionFileInfo      ExpressionFileInfo `json:"expressionFileInfo" gorm:"embedded;embeddedPrefix:expression_"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BucketLocation is the object path of the file inside its study bucket.
func (f *StudyFile) BucketLocation() string {
	if f.RemoteLocation != "" {
		return f.RemoteLocation
	}
	return f.UploadFileName
}

// BulkDownloadPathname is the path curl writes the file to, rooted at the
// study accession and grouped by file type.
func (f *StudyFile) BulkDownloadPathname(accession string) string {
	return path.Join(accession, FileTypeFolder(f.FileType), f.UploadFileName)
}

// ByteSize treats a missing upload size as zero.
func (f *StudyFile) ByteSize() int64 {
	if f.UploadFileSize == nil {
		return 0
	}
	return *f.UploadFileSize
}
