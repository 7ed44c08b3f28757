package reports

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

func contentTypeFor(format string) string {
	switch format {
	case FormatPDF:
		return "application/pdf"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
