package models

import "time"

type User struct {
	Model
	Email string `json:"email" gorm:"uniqueIndex;not null"`
	// Bytes requested through bulk download in the current quota period.
	DownloadQuotaUsed int64     `json:"downloadQuotaUsed" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
