package bulkdownload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/rohits-web03/cellportal/internal/telemetry"
)

type Deps struct {
	Catalog   Catalog
	Access    StudyAccess
	Quota     QuotaStore
	AuthCodes AuthCodeIssuer
	Signers   SignerFactory
	// Federated and Manifests are optional.
	Federated FederatedRepository
	Manifests ManifestLinker
	Reporter  ErrorReporter
	Logger    *slog.Logger
	Metrics   *telemetry.Metrics
}

type Options struct {
	DownloadQuota         int64
	SignedURLTTL          time.Duration
	AuthCodeTTL           time.Duration
	MaxConcurrency        int
	Retry                 RetryPolicy
	SignRetryable         func(error) bool
	FederatedRetryable    func(error) bool
	BaseURL               string
	InsecureManifestFetch bool
}

// Service orchestrates bulk download requests.
type Service struct {
	catalog     Catalog
	permissions *PermissionResolver
	ledger      *QuotaLedger
	composer    *Composer
	manifests   ManifestAssembler
	log         *slog.Logger
	metrics     *telemetry.Metrics
}

func NewService(deps Deps, opts Options) *Service {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("service", "bulk_download"))

	signer := NewSignedURLGenerator(deps.Signers, SignerOptions{
		Expires:   opts.SignedURLTTL,
		Retry:     opts.Retry,
		Retryable: opts.SignRetryable,
	}, deps.Reporter, log, deps.Metrics)

	var federated *FederatedResolver
	if deps.Federated != nil {
		federated = NewFederatedResolver(deps.Federated, deps.Manifests, FederatedOptions{
			Retry:     opts.Retry,
			Retryable: opts.FederatedRetryable,
		}, deps.Reporter, log, deps.Metrics)
	}

	return &Service{
		catalog:     deps.Catalog,
		permissions: NewPermissionResolver(deps.Access),
		ledger:      NewQuotaLedger(deps.Quota, opts.DownloadQuota, log, deps.Metrics),
		composer: NewComposer(signer, federated, deps.AuthCodes, ComposerOptions{
			BaseURL:          opts.BaseURL,
			ManifestTTL:      opts.AuthCodeTTL,
			InsecureManifest: opts.InsecureManifestFetch,
			Concurrency:      opts.MaxConcurrency,
		}),
		log:     log,
		metrics: deps.Metrics,
	}
}

type FileTypeSummary struct {
	TotalFiles int   `json:"total_files"`
	TotalBytes int64 `json:"total_bytes"`
}

type StudyFileInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	FileType       string `json:"file_type"`
	UploadFileSize int64  `json:"upload_file_size"`
}

type StudyDownloadInfo struct {
	Name        string          `json:"name"`
	Accession   string          `json:"accession"`
	Description string          `json:"description"`
	StudyFiles  []StudyFileInfo `json:"study_files"`
}

// resolveStudies loads the permitted studies behind the requested
// accessions, in request order.
func (s *Service) resolveStudies(ctx context.Context, user *models.User, requested []string) ([]models.Study, error) {
	accessions := models.SanitizeAccessions(requested)
	if len(accessions) > 0 {
		var err error
		accessions, err = s.catalog.MatchingAccessions(ctx, accessions)
		if err != nil {
			return nil, fmt.Errorf("match accessions: %w", err)
		}
	}
	if len(accessions) == 0 {
		return nil, &ValidationError{Err: ErrAccessionNotFound}
	}
	if err := s.permissions.Check(ctx, user, accessions); err != nil {
		return nil, err
	}
	studies, err := s.catalog.StudiesByAccession(ctx, accessions)
	if err != nil {
		return nil, fmt.Errorf("load studies: %w", err)
	}
	return studies, nil
}

// Summary counts files and bytes per file type. It has no side effects.
func (s *Service) Summary(ctx context.Context, user *models.User, accessions, fileTypes []string) (map[string]FileTypeSummary, error) {
	types, wantFiles, err := ResolveFileTypes(fileTypes, models.BulkDownloadTypes)
	if err != nil {
		return nil, err
	}
	studies, err := s.resolveStudies(ctx, user, accessions)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]FileTypeSummary, len(types))
	for _, t := range types {
		summary[t] = FileTypeSummary{}
	}
	if !wantFiles {
		return summary, nil
	}

	files, err := s.catalog.RequestedFiles(ctx, studyIDs(studies), types)
	if err != nil {
		return nil, fmt.Errorf("load study files: %w", err)
	}
	for i := range files {
		entry := summary[files[i].FileType]
		entry.TotalFiles++
		entry.TotalBytes += files[i].ByteSize()
		summary[files[i].FileType] = entry
	}
	return summary, nil
}

// DownloadInfo lists the downloadable files of each requested study.
func (s *Service) DownloadInfo(ctx context.Context, user *models.User, accessions []string) ([]StudyDownloadInfo, error) {
	studies, err := s.resolveStudies(ctx, user, accessions)
	if err != nil {
		return nil, err
	}
	files, err := s.catalog.RequestedFiles(ctx, studyIDs(studies), nil)
	if err != nil {
		return nil, fmt.Errorf("load study files: %w", err)
	}

	byStudy := make(map[string][]StudyFileInfo, len(studies))
	for i := range files {
		f := &files[i]
		byStudy[f.StudyID] = append(byStudy[f.StudyID], StudyFileInfo{
			ID:             f.ID,
			Name:           f.Name,
			FileType:       f.FileType,
			UploadFileSize: f.ByteSize(),
		})
	}

	info := make([]StudyDownloadInfo, 0, len(studies))
	for _, study := range studies {
		studyFiles := byStudy[study.ID]
		if studyFiles == nil {
			studyFiles = []StudyFileInfo{}
		}
		info = append(info, StudyDownloadInfo{
			Name:        study.Name,
			Accession:   study.Accession,
			Description: study.Description,
			StudyFiles:  studyFiles,
		})
	}
	return info, nil
}

// GenerateCurlConfig validates and authorizes req, charges the user's quota
// and renders the curl config. Per-file failures are reported inline.
func (s *Service) GenerateCurlConfig(ctx context.Context, user *models.User, req DownloadRequest) (string, error) {
	start := time.Now()
	if err := req.Validate(); err != nil {
		return "", err
	}

	var (
		studies []models.Study
		files   []models.StudyFile
		dirs    []models.DirectoryListing
		err     error
	)
	switch {
	case len(req.FileIDs) > 0:
		studies, files, err = s.resolveFileIDs(ctx, user, req.FileIDs)
	case len(req.Accessions) > 0:
		studies, files, dirs, err = s.resolveAccessions(ctx, user, req)
	}
	if err != nil {
		return "", err
	}

	descriptors, err := BuildDescriptors(studies, files, dirs)
	if err != nil {
		return "", err
	}

	if _, err := s.ledger.Charge(ctx, user, files, dirs); err != nil {
		return "", err
	}
	blocks, err := s.composer.Compose(ctx, ComposeInput{
		User:        user,
		Descriptors: descriptors,
		Studies:     DistinctStudies(descriptors, studies),
		IncludeDirs: len(dirs) > 0,
		Federated:   req.FederatedFiles,
	})
	if err != nil {
		return "", err
	}

	s.recordCurlConfig(ctx, user, descriptors, len(studies), time.Since(start))
	return Join(blocks), nil
}

func (s *Service) resolveFileIDs(ctx context.Context, user *models.User, ids []string) ([]models.Study, []models.StudyFile, error) {
	files, err := s.catalog.FilesByID(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("load files: %w", err)
	}
	if len(files) == 0 {
		return nil, nil, &ValidationError{Err: ErrAccessionNotFound}
	}

	ids = make([]string, 0, len(files))
	for i := range files {
		ids = append(ids, files[i].StudyID)
	}
	studies, err := s.catalog.StudiesByID(ctx, dedupe(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("load studies: %w", err)
	}
	if err := s.permissions.Check(ctx, user, accessionsOf(studies)); err != nil {
		return nil, nil, err
	}

	// Files whose study is gone cannot be placed in the download.
	loaded := toSet(studyIDs(studies))
	kept := files[:0]
	for _, f := range files {
		if _, ok := loaded[f.StudyID]; ok {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil, nil, &ValidationError{Err: ErrAccessionNotFound}
	}
	return studies, kept, nil
}

func (s *Service) resolveAccessions(ctx context.Context, user *models.User, req DownloadRequest) ([]models.Study, []models.StudyFile, []models.DirectoryListing, error) {
	types, wantFiles, err := ResolveFileTypes(req.FileTypes, models.DefaultBulkFileTypes)
	if err != nil {
		return nil, nil, nil, err
	}
	studies, err := s.resolveStudies(ctx, user, req.Accessions)
	if err != nil {
		return nil, nil, nil, err
	}
	if req.Directory != "" && len(studies) != 1 {
		return nil, nil, nil, validationErrorf("directory is only valid for single-study requests")
	}

	var files []models.StudyFile
	if wantFiles {
		files, err = s.catalog.RequestedFiles(ctx, studyIDs(studies), types)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load study files: %w", err)
		}
	}

	var dirs []models.DirectoryListing
	if req.Directory != "" {
		name := req.Directory
		if name == DirectoryAll {
			name = ""
		}
		dirs, err = s.catalog.SyncedDirectories(ctx, studies[0].ID, name)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load directories: %w", err)
		}
	}
	return studies, files, dirs, nil
}

func (s *Service) recordCurlConfig(ctx context.Context, user *models.User, descriptors []FileDescriptor, studyCount int, elapsed time.Duration) {
	fileTypes := make(map[string]int)
	for _, d := range descriptors {
		fileTypes[d.FileType()]++
	}
	s.metrics.CurlConfigGenerated(fileTypes, elapsed)
	s.log.InfoContext(ctx, "Curl config generated",
		"userId", user.ID,
		"studies", studyCount,
		"files", len(descriptors),
		"fileTypes", fileTypes,
		"elapsed", elapsed)
}

// StudyManifest renders the supplemental file info of one study.
func (s *Service) StudyManifest(ctx context.Context, user *models.User, accession string, includeDirs bool) (string, error) {
	studies, err := s.catalog.StudiesByAccession(ctx, []string{accession})
	if err != nil {
		return "", fmt.Errorf("load study: %w", err)
	}
	if len(studies) == 0 {
		return "", ErrStudyNotFound
	}
	study := studies[0]
	if err := s.permissions.Check(ctx, user, []string{study.Accession}); err != nil {
		return "", err
	}

	files, err := s.catalog.StudyFiles(ctx, study.ID)
	if err != nil {
		return "", fmt.Errorf("load study files: %w", err)
	}
	var dirs []models.DirectoryListing
	if includeDirs {
		dirs, err = s.catalog.SyncedDirectories(ctx, study.ID, "")
		if err != nil {
			return "", fmt.Errorf("load directories: %w", err)
		}
	}
	return s.manifests.TSV(files, dirs), nil
}

func studyIDs(studies []models.Study) []string {
	ids := make([]string, len(studies))
	for i, s := range studies {
		ids[i] = s.ID
	}
	return ids
}

func accessionsOf(studies []models.Study) []string {
	out := make([]string, len(studies))
	for i, s := range studies {
		out[i] = s.Accession
	}
	return out
}
