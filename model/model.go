package model

// DiffRecord represents a single proposed file change extracted from a
// model's reply.
type DiffRecord struct {
	// FilePath is the path of the file the diff targets, as reported by the
	// model. May be empty when no path could be derived.
	FilePath string
	// DiffContent is the raw diff text to be written out.
	DiffContent string
	// Summary is an optional short description used to name the diff file.
	Summary string
}

// Summary holds the results of one assistant run for display.
type Summary struct {
	Reply     string
	DiffFiles []string
	OutputDir string
	Message   string
}
