package models

import (
	"regexp"
	"strings"
	"time"
)

var accessionRegexp = regexp.MustCompile(`^SCP\d+$`)

type Study struct {
	Model
	Accession   string       `json:"accession" gorm:"uniqueIndex;not null"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	BucketID    string       `json:"bucketId" gorm:"not null"`
	UserID      string       `json:"userId" gorm:"type:uuid;index;not null"` // owner
	Public      bool         `json:"public" gorm:"default:false"`
	CellCount   int64        `json:"cellCount"`
	GeneCount   int64        `json:"geneCount"`
	Shares      []StudyShare `json:"-" gorm:"foreignKey:StudyID"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}

// StudyShare grants view access on a study to the account with Email.
type StudyShare struct {
	Model
	StudyID string `json:"studyId" gorm:"type:uuid;index;not null"`
	Email   string `json:"email" gorm:"index;not null"`
}

// SanitizeAccessions trims the given values and keeps the well-formed
// accessions, dropping duplicates while preserving order.
func SanitizeAccessions(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if !accessionRegexp.MatchString(a) {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
