package bulkdownload

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/rohits-web03/cellportal/internal/models"
)

// ManifestPath is the API path serving the manifest of a study.
func ManifestPath(accession string) string {
	return "/api/v1/studies/" + accession + "/manifest"
}

type ComposerOptions struct {
	// BaseURL is the absolute public URL of this service, without a
	// trailing slash.
	BaseURL     string
	ManifestTTL time.Duration
	// InsecureManifest adds -k to manifest fetches.
	InsecureManifest bool
	Concurrency      int
}

type ComposeInput struct {
	User        *models.User
	Descriptors []FileDescriptor
	// Studies own the descriptors, in first-appearance order; each gets a
	// manifest block.
	Studies     []models.Study
	IncludeDirs bool
	Federated   []FederatedProject
}

// Composer assembles the blocks of a curl config.
type Composer struct {
	signer    *SignedURLGenerator
	federated *FederatedResolver
	authCodes AuthCodeIssuer
	opts      ComposerOptions
}

func NewComposer(signer *SignedURLGenerator, federated *FederatedResolver, authCodes AuthCodeIssuer, opts ComposerOptions) *Composer {
	if opts.Concurrency < 1 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Composer{signer: signer, federated: federated, authCodes: authCodes, opts: opts}
}

// Compose returns, in order: the global options, one block per descriptor,
// one manifest block per study and the federated blocks.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) ([]Block, error) {
	manifests := make([]Block, 0, len(in.Studies))
	for _, study := range in.Studies {
		block, err := c.manifestBlock(ctx, in.User, study, in.IncludeDirs)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, block)
	}

	blocks := make([]Block, 0, 1+len(in.Descriptors)+len(manifests))
	blocks = append(blocks, GlobalOptions())
	blocks = append(blocks, c.signer.SignAll(ctx, in.Descriptors, c.opts.Concurrency)...)
	blocks = append(blocks, manifests...)

	if len(in.Federated) > 0 {
		if c.federated == nil {
			blocks = append(blocks, CommentBlock("Federated downloads are not configured; federated files were skipped"))
		} else {
			blocks = append(blocks, c.federated.Blocks(ctx, in.Federated, c.opts.Concurrency)...)
		}
	}
	return blocks, nil
}

func (c *Composer) manifestBlock(ctx context.Context, user *models.User, study models.Study, includeDirs bool) (Block, error) {
	manifestPath := ManifestPath(study.Accession)
	code, err := c.authCodes.Issue(ctx, user.ID, c.opts.ManifestTTL, []string{manifestPath})
	if err != nil {
		return Block{}, fmt.Errorf("issue manifest auth code for %s: %w", study.Accession, err)
	}

	query := url.Values{}
	query.Set("auth_code", strconv.FormatInt(code.Value, 10))
	query.Set("include_dirs", strconv.FormatBool(includeDirs))
	manifestURL := c.opts.BaseURL + manifestPath + "?" + query.Encode()

	block := URLBlock(manifestURL, path.Join(study.Accession, ManifestFilename))
	if c.opts.InsecureManifest {
		block.Lines = append([]string{"-k"}, block.Lines...)
	}
	return block, nil
}
