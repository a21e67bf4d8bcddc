package models

import "time"

// DownloadAgreement gates downloads of a study behind explicit acceptance,
// independent of view permission.
type DownloadAgreement struct {
	Model
	StudyID   string     `json:"studyId" gorm:"type:uuid;uniqueIndex;not null"`
	Content   string     `json:"content" gorm:"type:text"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

func (a *DownloadAgreement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !a.ExpiresAt.After(now)
}

type DownloadAcceptance struct {
	Model
	DownloadAgreementID string    `json:"downloadAgreementId" gorm:"type:uuid;index;not null"`
	StudyAccession      string    `json:"studyAccession" gorm:"index;not null"`
	Email               string    `json:"email" gorm:"index;not null"`
	CreatedAt           time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
