package bulkdownload

import (
	"testing"

	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadRequest_Validate(t *testing.T) {
	fileID := "3f1e7c52-8a0b-4c1e-9d55-2f0b3a6c9e11"

	tests := []struct {
		name    string
		req     DownloadRequest
		wantErr bool
	}{
		{name: "accessions only", req: DownloadRequest{Accessions: []string{"SCP1"}}},
		{name: "accessions with types", req: DownloadRequest{Accessions: []string{"SCP1"}, FileTypes: []string{"Cluster"}}},
		{name: "file ids only", req: DownloadRequest{FileIDs: []string{fileID}}},
		{name: "federated only", req: DownloadRequest{FederatedFiles: []FederatedProject{{ShortName: "proj"}}}},
		{name: "directory with one study", req: DownloadRequest{Accessions: []string{"SCP1"}, Directory: "all"}},
		{name: "empty", req: DownloadRequest{}, wantErr: true},
		{name: "both selectors", req: DownloadRequest{Accessions: []string{"SCP1"}, FileIDs: []string{fileID}}, wantErr: true},
		{name: "file ids with types", req: DownloadRequest{FileIDs: []string{fileID}, FileTypes: []string{"Cluster"}}, wantErr: true},
		{name: "malformed file id", req: DownloadRequest{FileIDs: []string{"not-a-uuid"}}, wantErr: true},
		{name: "directory with repeated accession", req: DownloadRequest{Accessions: []string{"SCP1", "SCP1"}, Directory: "all"}},
		{name: "directory with file ids", req: DownloadRequest{FileIDs: []string{fileID}, Directory: "all"}, wantErr: true},
		{name: "federated project without name", req: DownloadRequest{FederatedFiles: []FederatedProject{{}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResolveFileTypes(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []string
		wantFiles bool
		wantErr   bool
	}{
		{
			name:      "defaults when empty",
			requested: nil,
			want:      models.DefaultBulkFileTypes,
			wantFiles: true,
		},
		{
			name:      "none selects no files",
			requested: []string{models.FileTypeNone},
			want:      nil,
			wantFiles: false,
		},
		{
			name:      "expression expands",
			requested: []string{"Cluster", "Expression"},
			want:      []string{"Cluster", "Expression Matrix", "MM Coordinate Matrix", "10X Genes File", "10X Barcodes File"},
			wantFiles: true,
		},
		{
			name:      "invalid types dropped",
			requested: []string{"Metadata", "Bogus", "Metadata"},
			want:      []string{"Metadata"},
			wantFiles: true,
		},
		{
			name:      "nothing valid",
			requested: []string{"Bogus"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, wantFiles, err := ResolveFileTypes(tt.requested, models.DefaultBulkFileTypes)
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFiles, wantFiles)
		})
	}
}
