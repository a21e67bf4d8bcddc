package repositories

import (
	"context"
	"time"

	"github.com/rohits-web03/cellportal/internal/models"
	"gorm.io/gorm"
)

// StudyRepository reads studies, their files and directory listings, and
// the access rules guarding them.
type StudyRepository struct {
	db *gorm.DB
}

func NewStudyRepository(db *gorm.DB) *StudyRepository {
	return &StudyRepository{db: db}
}

// ViewableAccessions returns the accessions among the given ones that user
// owns, has been shared, or that are public.
func (r *StudyRepository) ViewableAccessions(ctx context.Context, user *models.User, accessions []string) ([]string, error) {
	shared := r.db.WithContext(ctx).Model(&models.StudyShare{}).Select("study_id").Where("email = ?", user.Email)

	var out []string
	err := r.db.WithContext(ctx).Model(&models.Study{}).
		Where("accession IN ?", accessions).
		Where("(public = ? OR user_id = ? OR id IN (?))", true, user.ID, shared).
		Pluck("accession", &out).Error
	return out, err
}

// ActiveAgreementAccessions returns the accessions among the given ones with
// a download agreement that has not expired at now.
func (r *StudyRepository) ActiveAgreementAccessions(ctx context.Context, accessions []string, now time.Time) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).Model(&models.DownloadAgreement{}).
		Joins("JOIN studies ON studies.id = download_agreements.study_id").
		Where("studies.accession IN ?", accessions).
		Where("(download_agreements.expires_at IS NULL OR download_agreements.expires_at > ?)", now).
		Pluck("studies.accession", &out).Error
	return out, err
}

func (r *StudyRepository) HasAcceptedAgreement(ctx context.Context, accession, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DownloadAcceptance{}).
		Where("study_accession = ? AND email = ?", accession, email).
		Count(&count).Error
	return count > 0, err
}

// MatchingAccessions returns the existing accessions, in request order.
func (r *StudyRepository) MatchingAccessions(ctx context.Context, accessions []string) ([]string, error) {
	var found []string
	err := r.db.WithContext(ctx).Model(&models.Study{}).
		Where("accession IN ?", accessions).
		Pluck("accession", &found).Error
	if err != nil {
		return nil, err
	}
	return orderLike(accessions, found, func(a string) string { return a }), nil
}

func (r *StudyRepository) StudiesByAccession(ctx context.Context, accessions []string) ([]models.Study, error) {
	var studies []models.Study
	if err := r.db.WithContext(ctx).Where("accession IN ?", accessions).Find(&studies).Error; err != nil {
		return nil, err
	}
	return orderLike(accessions, studies, func(s models.Study) string { return s.Accession }), nil
}

func (r *StudyRepository) StudiesByID(ctx context.Context, ids []string) ([]models.Study, error) {
	var studies []models.Study
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&studies).Error; err != nil {
		return nil, err
	}
	return orderLike(ids, studies, func(s models.Study) string { return s.ID }), nil
}

// downloadable excludes deleted files and externally hosted sequence data.
func downloadable(db *gorm.DB) *gorm.DB {
	return db.Where("queued_for_deletion = ?", false).Where("human_fastq_url = ?", "")
}

func (r *StudyRepository) RequestedFiles(ctx context.Context, studyIDs []string, fileTypes []string) ([]models.StudyFile, error) {
	q := r.db.WithContext(ctx).Scopes(downloadable).Where("study_id IN ?", studyIDs)
	if len(fileTypes) > 0 {
		q = q.Where("file_type IN ?", fileTypes)
	}
	var files []models.StudyFile
	err := q.Order("created_at ASC").Order("upload_file_name ASC").Find(&files).Error
	return files, err
}

// FilesByID returns the downloadable files among ids, in request order.
// Unknown ids are skipped.
func (r *StudyRepository) FilesByID(ctx context.Context, ids []string) ([]models.StudyFile, error) {
	var files []models.StudyFile
	if err := r.db.WithContext(ctx).Scopes(downloadable).Where("id IN ?", ids).Find(&files).Error; err != nil {
		return nil, err
	}
	return orderLike(ids, files, func(f models.StudyFile) string { return f.ID }), nil
}

// StudyFiles returns every file of the study not queued for deletion.
func (r *StudyRepository) StudyFiles(ctx context.Context, studyID string) ([]models.StudyFile, error) {
	var files []models.StudyFile
	err := r.db.WithContext(ctx).
		Where("study_id = ? AND queued_for_deletion = ?", studyID, false).
		Order("created_at ASC").Order("upload_file_name ASC").
		Find(&files).Error
	return files, err
}

func (r *StudyRepository) SyncedDirectories(ctx context.Context, studyID, name string) ([]models.DirectoryListing, error) {
	q := r.db.WithContext(ctx).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("study_id = ? AND sync_status = ?", studyID, true)
	if name != "" {
		q = q.Where("name = ?", name)
	}
	var dirs []models.DirectoryListing
	err := q.Order("name ASC").Find(&dirs).Error
	return dirs, err
}

// orderLike reorders items to follow keys; items whose key is absent from
// keys are dropped.
func orderLike[T any](keys []string, items []T, key func(T) string) []T {
	byKey := make(map[string]T, len(items))
	for _, item := range items {
		byKey[key(item)] = item
	}
	out := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if item, ok := byKey[k]; ok {
			out = append(out, item)
		}
	}
	return out
}
