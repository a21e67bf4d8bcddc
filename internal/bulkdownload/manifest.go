package bulkdownload

import (
	"strconv"
	"strings"

	"github.com/rohits-web03/cellportal/internal/models"
)

// ManifestFilename is the name of the per-study supplemental info file.
const ManifestFilename = "file_supplemental_info.tsv"

var ManifestColumns = []string{
	"filename",
	"file_type",
	"species_scientific_name",
	"genome_assembly_name",
	"genome_assembly_accession",
	"genome_annotation_name",
	"is_raw_counts",
	"library_preparation_protocol",
	"units",
	"biosample_input_type",
	"modality",
}

// ManifestAssembler renders the tab separated file manifest of a study.
type ManifestAssembler struct{}

func (ManifestAssembler) Rows(files []models.StudyFile, dirs []models.DirectoryListing) [][]string {
	rows := make([][]string, 0, len(files))
	for i := range files {
		f := &files[i]
		if f.QueuedForDeletion {
			continue
		}
		info := f.ExpressionFileInfo
		rows = append(rows, []string{
			f.UploadFileName,
			f.FileType,
			f.SpeciesScientificName,
			f.GenomeAssemblyName,
			f.GenomeAssemblyAccession,
			f.GenomeAnnotationName,
			formatOptionalBool(info.IsRawCounts),
			info.LibraryPreparationProtocol,
			info.Units,
			info.BiosampleInputType,
			info.Modality,
		})
	}
	for i := range dirs {
		d := &dirs[i]
		for _, entry := range d.Files {
			row := make([]string, len(ManifestColumns))
			row[0] = d.BulkDownloadFolder(entry)
			row[1] = d.FileType
			row[2] = d.SpeciesScientificName
			rows = append(rows, row)
		}
	}
	return rows
}

// TSV renders the header and rows, one newline-terminated line each.
func (a ManifestAssembler) TSV(files []models.StudyFile, dirs []models.DirectoryListing) string {
	var b strings.Builder
	writeTSVLine(&b, ManifestColumns)
	for _, row := range a.Rows(files, dirs) {
		writeTSVLine(&b, row)
	}
	return b.String()
}

var tsvCleaner = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func writeTSVLine(b *strings.Builder, values []string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(tsvCleaner.Replace(v))
	}
	b.WriteByte('\n')
}

func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
