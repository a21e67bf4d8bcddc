package bulkdownload

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohits-web03/cellportal/internal/bulkdownload/mocks"
	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignedURLGenerator_RetriesTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	signer := mocks.NewMockURLSigner(ctrl)
	gomock.InOrder(
		signer.EXPECT().SignURL(gomock.Any(), "bucket-1", "a.txt", 2*time.Hour).Return("", errTransient),
		signer.EXPECT().SignURL(gomock.Any(), "bucket-1", "a.txt", 2*time.Hour).Return("https://signed/a", nil),
	)

	factoryCalls := 0
	g := NewSignedURLGenerator(func() (URLSigner, error) {
		factoryCalls++
		return signer, nil
	}, SignerOptions{Expires: 2 * time.Hour, Retry: fastPolicy(3), Retryable: isTransient}, nil, nil, nil)

	desc := StudyFileRef{File: models.StudyFile{UploadFileName: "a.txt"}, Bucket: "bucket-1", Output: "SCP1/cluster/a.txt"}
	block := g.Sign(context.Background(), desc)

	assert.Equal(t, "url=\"https://signed/a\"\noutput=\"SCP1/cluster/a.txt\"", block.String())
	assert.Equal(t, 2, factoryCalls)
}

func TestSignedURLGenerator_PermanentFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	signer := mocks.NewMockURLSigner(ctrl)
	reporter := mocks.NewMockErrorReporter(ctrl)
	signer.EXPECT().SignURL(gomock.Any(), gomock.Any(), gomock.Any(), DefaultSignedURLTTL).Return("", errors.New("not found"))
	reporter.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ error, fields map[string]any) {
			assert.Equal(t, "sign", fields["operation"])
			assert.Equal(t, "a.txt", fields["object"])
		})

	g := NewSignedURLGenerator(func() (URLSigner, error) { return signer, nil },
		SignerOptions{Retry: fastPolicy(3), Retryable: isTransient}, reporter, nil, nil)

	desc := StudyFileRef{File: models.StudyFile{UploadFileName: "a.txt"}, Bucket: "bucket-1", Output: "SCP1/cluster/a.txt"}
	block := g.Sign(context.Background(), desc)
	require.True(t, block.IsComment())
	assert.Contains(t, block.String(), "SCP1/cluster/a.txt")
}

func TestSignedURLGenerator_FactoryFailure(t *testing.T) {
	g := NewSignedURLGenerator(func() (URLSigner, error) { return nil, errors.New("no credentials") },
		SignerOptions{Retry: RetryPolicy{MaxAttempts: 1}}, nil, nil, nil)

	block := g.Sign(context.Background(), DirectoryEntryRef{Output: "SCP1/raw/a.fq"})
	assert.True(t, block.IsComment())
}

func TestSignedURLGenerator_SignAllKeepsOrder(t *testing.T) {
	g := NewSignedURLGenerator(func() (URLSigner, error) { return &stubSigner{}, nil },
		SignerOptions{Retry: RetryPolicy{MaxAttempts: 1}}, nil, nil, nil)

	var descriptors []FileDescriptor
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		descriptors = append(descriptors, StudyFileRef{
			File:   models.StudyFile{UploadFileName: name},
			Bucket: "bkt",
			Output: "SCP1/other/" + name,
		})
	}

	blocks := g.SignAll(context.Background(), descriptors, 2)
	require.Len(t, blocks, len(descriptors))
	for i, d := range descriptors {
		assert.Contains(t, blocks[i].String(), `output="`+d.OutputPath()+`"`)
	}
}
