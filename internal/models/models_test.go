package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeAccessions(t *testing.T) {
	got := SanitizeAccessions([]string{"SCP1", "scp2", "SCP1", "SCP10", "'; drop", ""})
	require.Equal(t, []string{"SCP1", "SCP10"}, got)
}

func TestStudyFile_Paths(t *testing.T) {
	size := int64(42)
	f := StudyFile{UploadFileName: "matrix.tsv", FileType: FileTypeExpressionMatrix, UploadFileSize: &size}
	assert.Equal(t, "matrix.tsv", f.BucketLocation())
	assert.Equal(t, "SCP1/expression/matrix.tsv", f.BulkDownloadPathname("SCP1"))
	assert.Equal(t, int64(42), f.ByteSize())

	f.RemoteLocation = "parse/matrix.tsv.gz"
	assert.Equal(t, "parse/matrix.tsv.gz", f.BucketLocation())

	f.UploadFileSize = nil
	assert.Zero(t, f.ByteSize())

	other := StudyFile{UploadFileName: "notes.txt", FileType: "Something New"}
	assert.Equal(t, "SCP1/other/notes.txt", other.BulkDownloadPathname("SCP1"))
}

func TestDirectoryListing(t *testing.T) {
	dir := DirectoryListing{
		Name: "fastq",
		Files: []DirectoryFile{
			{Name: "fastq/a_R1.fastq.gz", Size: 10},
			{Name: "fastq/a_R2.fastq.gz", Size: 15},
		},
	}
	assert.Equal(t, int64(25), dir.TotalBytes())
	assert.Equal(t, "fastq/a_R1.fastq.gz", dir.BulkDownloadFolder(dir.Files[0]))
	assert.Equal(t, "SCP7/fastq/a_R2.fastq.gz", dir.BulkDownloadPathname("SCP7", dir.Files[1]))

	root := DirectoryListing{Name: "/"}
	assert.Equal(t, "readme.txt", root.BulkDownloadFolder(DirectoryFile{Name: "readme.txt"}))
}

func TestDownloadAgreement_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&DownloadAgreement{}).Expired(now))
	assert.True(t, (&DownloadAgreement{ExpiresAt: &past}).Expired(now))
	assert.False(t, (&DownloadAgreement{ExpiresAt: &future}).Expired(now))
}

func TestFileTypes(t *testing.T) {
	assert.True(t, IsBulkDownloadType(FileTypeCluster))
	assert.False(t, IsBulkDownloadType(FileTypeExpression))
	assert.False(t, IsBulkDownloadType(FileTypeNone))
	for _, ft := range DefaultBulkFileTypes {
		assert.True(t, IsBulkDownloadType(ft), ft)
	}
}
