package bulkdownload

import (
	"context"
	"time"

	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// URLSigner mints a time-limited GET URL for one object.
type URLSigner interface {
	SignURL(ctx context.Context, bucket, object string, expires time.Duration) (string, error)
}

// SignerFactory builds a fresh signer; one is created per signing task.
type SignerFactory func() (URLSigner, error)

// StudyAccess answers view-permission and download-agreement questions.
type StudyAccess interface {
	ViewableAccessions(ctx context.Context, user *models.User, accessions []string) ([]string, error)
	ActiveAgreementAccessions(ctx context.Context, accessions []string, now time.Time) ([]string, error)
	HasAcceptedAgreement(ctx context.Context, accession, email string) (bool, error)
}

// QuotaStore persists increments of a user's consumed download quota and
// returns the new total.
type QuotaStore interface {
	AddDownloadQuota(ctx context.Context, userID string, bytes int64) (int64, error)
}

// Catalog looks up studies, files and directory listings.
type Catalog interface {
	MatchingAccessions(ctx context.Context, accessions []string) ([]string, error)
	StudiesByAccession(ctx context.Context, accessions []string) ([]models.Study, error)
	StudiesByID(ctx context.Context, ids []string) ([]models.Study, error)
	// RequestedFiles returns downloadable files of the studies; an empty
	// fileTypes list matches every type.
	RequestedFiles(ctx context.Context, studyIDs []string, fileTypes []string) ([]models.StudyFile, error)
	FilesByID(ctx context.Context, ids []string) ([]models.StudyFile, error)
	StudyFiles(ctx context.Context, studyID string) ([]models.StudyFile, error)
	// SyncedDirectories returns synced listings of the study; an empty name
	// matches all of them.
	SyncedDirectories(ctx context.Context, studyID, name string) ([]models.DirectoryListing, error)
}

type AuthCodeIssuer interface {
	Issue(ctx context.Context, userID string, ttl time.Duration, paths []string) (authcode.Code, error)
}

// FederatedRepository is the data repository serving DRS objects.
type FederatedRepository interface {
	AccessToken(ctx context.Context) (string, error)
	ResolveDRS(ctx context.Context, drsID string) (string, error)
}

// ManifestLinker resolves federated project manifests to a download location.
type ManifestLinker interface {
	DefaultCatalog() string
	ProjectManifestLink(ctx context.Context, catalog, manifestURL string) (string, error)
}

// ErrorReporter receives failures that are recovered locally.
type ErrorReporter interface {
	Report(ctx context.Context, err error, fields map[string]any)
}
