package bulkdownload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/rohits-web03/cellportal/internal/telemetry"
)

var errNoFederatedSource = errors.New("federated file has neither a DRS id nor a URL")

type FederatedOptions struct {
	Retry     RetryPolicy
	Retryable func(error) bool
}

// FederatedResolver renders blocks for files hosted in the federated data
// repository and project manifests served by the metadata index.
type FederatedResolver struct {
	repo     FederatedRepository
	linker   ManifestLinker
	opts     FederatedOptions
	reporter ErrorReporter
	log      *slog.Logger
	metrics  *telemetry.Metrics
}

func NewFederatedResolver(repo FederatedRepository, linker ManifestLinker, opts FederatedOptions, reporter ErrorReporter, log *slog.Logger, metrics *telemetry.Metrics) *FederatedResolver {
	if log == nil {
		log = slog.Default()
	}
	return &FederatedResolver{
		repo:     repo,
		linker:   linker,
		opts:     opts,
		reporter: reporter,
		log:      log,
		metrics:  metrics,
	}
}

type federatedTask struct {
	project string
	file    FederatedFile
}

func (t federatedTask) output() string {
	return path.Join(t.project, t.file.Name)
}

// Blocks returns the bearer header block followed, per project, by the
// project manifest blocks and then one block per file. Failures become
// comment blocks.
func (r *FederatedResolver) Blocks(ctx context.Context, projects []FederatedProject, concurrency int) []Block {
	if len(projects) == 0 {
		return nil
	}

	var token string
	err := r.opts.Retry.Do(ctx, r.opts.Retryable, r.onRetry(ctx, "data_repo_token"), func(ctx context.Context) error {
		var err error
		token, err = r.repo.AccessToken(ctx)
		return err
	})
	if err != nil {
		r.report(ctx, err, "data_repo_token", "")
		return []Block{CommentBlock("Error authenticating with the data repository; federated files were skipped")}
	}

	var tasks []federatedTask
	for _, p := range projects {
		for _, f := range p.Files {
			if f.FileType == ProjectManifestType {
				tasks = append(tasks, federatedTask{project: p.ShortName, file: f})
			}
		}
		for _, f := range p.Files {
			if f.FileType != ProjectManifestType {
				tasks = append(tasks, federatedTask{project: p.ShortName, file: f})
			}
		}
	}

	blocks := make([]Block, len(tasks)+1)
	blocks[0] = HeaderBlock("Authorization: Bearer " + token)
	fanOut(concurrency, len(tasks), func(i int) {
		task := tasks[i]
		if task.file.FileType == ProjectManifestType {
			blocks[i+1] = r.manifestBlock(ctx, task)
		} else {
			blocks[i+1] = r.fileBlock(ctx, task)
		}
	})
	return blocks
}

func (r *FederatedResolver) manifestBlock(ctx context.Context, task federatedTask) Block {
	if r.linker == nil {
		return CommentBlock("Error retrieving project manifest " + task.output())
	}
	var link string
	err := r.opts.Retry.Do(ctx, r.opts.Retryable, r.onRetry(ctx, "project_manifest"), func(ctx context.Context) error {
		var err error
		link, err = r.linker.ProjectManifestLink(ctx, r.linker.DefaultCatalog(), task.file.URL)
		return err
	})
	if err != nil {
		r.metrics.FederatedFile("error")
		r.report(ctx, err, "project_manifest", task.output())
		return CommentBlock("Error retrieving project manifest " + task.output())
	}
	r.metrics.FederatedFile("ok")
	block := URLBlock(link, task.output())
	block.Lines = append([]string{"--location"}, block.Lines...)
	return block
}

func (r *FederatedResolver) fileBlock(ctx context.Context, task federatedTask) Block {
	if task.file.DRSID == "" {
		if task.file.URL == "" {
			r.metrics.FederatedFile("error")
			r.report(ctx, errNoFederatedSource, "drs_resolve", task.output())
			return CommentBlock("Error downloading " + task.output() + ". No source location was provided.")
		}
		r.metrics.FederatedFile("ok")
		return URLBlock(task.file.URL, task.output())
	}

	var accessURL string
	err := r.opts.Retry.Do(ctx, r.opts.Retryable, r.onRetry(ctx, "drs_resolve"), func(ctx context.Context) error {
		var err error
		accessURL, err = r.repo.ResolveDRS(ctx, task.file.DRSID)
		return err
	})
	if err != nil {
		r.metrics.FederatedFile("error")
		r.report(ctx, fmt.Errorf("resolve %s: %w", task.file.DRSID, err), "drs_resolve", task.output())
		return CommentBlock("Error downloading " + task.output() + " from the data repository.")
	}
	r.metrics.FederatedFile("ok")
	return URLBlock(accessURL, task.output())
}

func (r *FederatedResolver) onRetry(ctx context.Context, operation string) func(int, error) {
	return func(attempt int, err error) {
		r.metrics.Retry(operation)
		r.log.DebugContext(ctx, "Retrying federated call", "operation", operation, "attempt", attempt, "error", err)
	}
}

func (r *FederatedResolver) report(ctx context.Context, err error, operation, output string) {
	if r.reporter == nil {
		return
	}
	r.reporter.Report(ctx, err, map[string]any{"operation": operation, "output": output})
}
