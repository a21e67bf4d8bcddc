package models

const (
	FileTypeCluster          = "Cluster"
	FileTypeMetadata         = "Metadata"
	FileTypeExpression       = "Expression"
	FileTypeExpressionMatrix = "Expression Matrix"
	FileTypeMMCoordinate     = "MM Coordinate Matrix"
	FileType10XGenes         = "10X Genes File"
	FileType10XBarcodes      = "10X Barcodes File"
	FileTypeCoordinateLabels = "Coordinate Labels"
	FileTypeFastq            = "Fastq"
	FileTypeBAM              = "BAM"
	FileTypeBAMIndex         = "BAM Index"
	FileTypeDocumentation    = "Documentation"
	FileTypeAnalysisOutput   = "Analysis Output"
	FileTypeAnnData          = "AnnData"
	FileTypeOther            = "Other"

	// FileTypeNone requests no study files, only directory listings.
	FileTypeNone = "None"
)

// BulkDownloadTypes are the file types selectable for bulk download, in
// display order.
var BulkDownloadTypes = []string{
	FileTypeCluster,
	FileTypeMetadata,
	FileTypeExpressionMatrix,
	FileTypeMMCoordinate,
	FileType10XGenes,
	FileType10XBarcodes,
	FileTypeCoordinateLabels,
	FileTypeFastq,
	FileTypeBAM,
	FileTypeBAMIndex,
	FileTypeDocumentation,
	FileTypeAnalysisOutput,
	FileTypeAnnData,
	FileTypeOther,
}

var DefaultBulkFileTypes = []string{
	FileTypeCluster,
	FileTypeMetadata,
	FileTypeExpressionMatrix,
	FileTypeMMCoordinate,
	FileType10XGenes,
	FileType10XBarcodes,
}

// ExpressionFileTypes replace the "Expression" shorthand. Bundled 10X files
// are included so a matrix download carries its genes and barcodes.
var ExpressionFileTypes = []string{
	FileTypeExpressionMatrix,
	FileTypeMMCoordinate,
	FileType10XGenes,
	FileType10XBarcodes,
}

var fileTypeFolders = map[string]string{
	FileTypeCluster:          "cluster",
	FileTypeMetadata:         "metadata",
	FileTypeExpressionMatrix: "expression",
	FileTypeMMCoordinate:     "expression",
	FileType10XGenes:         "expression",
	FileType10XBarcodes:      "expression",
	FileTypeCoordinateLabels: "labels",
	FileTypeFastq:            "sequence",
	FileTypeBAM:              "sequence",
	FileTypeBAMIndex:         "sequence",
	FileTypeDocumentation:    "documentation",
	FileTypeAnalysisOutput:   "analysis",
	FileTypeAnnData:          "anndata",
}

// FileTypeFolder is the download sub-folder grouping files of fileType.
func FileTypeFolder(fileType string) string {
	if folder, ok := fileTypeFolders[fileType]; ok {
		return folder
	}
	return "other"
}

func IsBulkDownloadType(fileType string) bool {
	for _, t := range BulkDownloadTypes {
		if t == fileType {
			return true
		}
	}
	return false
}
