package bulkdownload

import (
	"context"
	"errors"
	"testing"

	"github.com/rohits-web03/cellportal/internal/bulkdownload/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFederatedResolver_Blocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFederatedRepository(ctrl)
	linker := mocks.NewMockManifestLinker(ctrl)
	reporter := mocks.NewMockErrorReporter(ctrl)

	repo.EXPECT().AccessToken(gomock.Any()).Return("tok", nil)
	repo.EXPECT().ResolveDRS(gomock.Any(), "drs://repo.example.org/v1_abc").Return("https://signed.example.org/a.bam", nil)
	repo.EXPECT().ResolveDRS(gomock.Any(), "drs://repo.example.org/v1_bad").Return("", errors.New("object not found"))
	linker.EXPECT().DefaultCatalog().Return("dcp2").AnyTimes()
	linker.EXPECT().ProjectManifestLink(gomock.Any(), "dcp2", "/fetch/manifest/files?format=compact").
		Return("https://service.example.org/manifest/files.tsv", nil)
	reporter.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	projects := []FederatedProject{{
		ShortName: "lung-atlas",
		Files: []FederatedFile{
			{Name: "a.bam", FileType: "BAM", DRSID: "drs://repo.example.org/v1_abc"},
			{Name: "manifest.tsv", FileType: ProjectManifestType, URL: "/fetch/manifest/files?format=compact"},
			{Name: "b.bam", FileType: "BAM", DRSID: "drs://repo.example.org/v1_bad"},
			{Name: "c.txt", FileType: "Other", URL: "https://direct.example.org/c.txt"},
		},
	}}

	r := NewFederatedResolver(repo, linker, FederatedOptions{Retry: RetryPolicy{MaxAttempts: 1}}, reporter, nil, nil)
	blocks := r.Blocks(context.Background(), projects, 2)

	require.Len(t, blocks, 5)
	assert.Equal(t, `-H "Authorization: Bearer tok"`, blocks[0].String())
	assert.Equal(t,
		"--location\nurl=\"https://service.example.org/manifest/files.tsv\"\noutput=\"lung-atlas/manifest.tsv\"",
		blocks[1].String())
	assert.Equal(t, "url=\"https://signed.example.org/a.bam\"\noutput=\"lung-atlas/a.bam\"", blocks[2].String())
	assert.True(t, blocks[3].IsComment())
	assert.Contains(t, blocks[3].String(), "lung-atlas/b.bam")
	assert.Equal(t, "url=\"https://direct.example.org/c.txt\"\noutput=\"lung-atlas/c.txt\"", blocks[4].String())
}

func TestFederatedResolver_TokenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFederatedRepository(ctrl)
	reporter := mocks.NewMockErrorReporter(ctrl)

	repo.EXPECT().AccessToken(gomock.Any()).Return("", errors.New("no credentials")).Times(2)
	reporter.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	r := NewFederatedResolver(repo, nil, FederatedOptions{Retry: fastPolicy(2)}, reporter, nil, nil)
	blocks := r.Blocks(context.Background(), []FederatedProject{{ShortName: "p", Files: []FederatedFile{{Name: "a", DRSID: "x"}}}}, 1)

	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].IsComment())
}

func TestFederatedResolver_NoProjects(t *testing.T) {
	r := NewFederatedResolver(nil, nil, FederatedOptions{}, nil, nil, nil)
	assert.Nil(t, r.Blocks(context.Background(), nil, 1))
}
