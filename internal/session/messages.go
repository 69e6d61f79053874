package session

// Messages are the user-visible toast texts emitted by the workspace
type Messages struct {
	TooFewFiles  string
	MergeSuccess string
	MergeError   string
	InvalidPages string
	SplitSuccess string
	SplitError   string
	NotPDF       string // format with file name
	Unreadable   string // format with file name
	Busy         string
}

// DefaultMessages returns the English toast texts
func DefaultMessages() Messages {
	return Messages{
		TooFewFiles:  "Please upload at least 2 PDF files to merge",
		MergeSuccess: "PDFs merged successfully!",
		MergeError:   "Error merging PDFs. Please try again.",
		InvalidPages: "Please enter valid pages",
		SplitSuccess: "PDF split successfully!",
		SplitError:   "Error splitting PDF. Please check your page ranges and try again.",
		NotPDF:       "%s is not a PDF file",
		Unreadable:   "Could not read %s",
		Busy:         "Please wait for the current operation to finish",
	}
}

// withDefaults fills empty fields from DefaultMessages
func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&m.TooFewFiles, d.TooFewFiles)
	fill(&m.MergeSuccess, d.MergeSuccess)
	fill(&m.MergeError, d.MergeError)
	fill(&m.InvalidPages, d.InvalidPages)
	fill(&m.SplitSuccess, d.SplitSuccess)
	fill(&m.SplitError, d.SplitError)
	fill(&m.NotPDF, d.NotPDF)
	fill(&m.Unreadable, d.Unreadable)
	fill(&m.Busy, d.Busy)
	return m
}
