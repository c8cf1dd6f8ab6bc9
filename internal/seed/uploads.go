package seed

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

const (
	UploadRole  = "Detected from CV"
	UploadEmail = "pending@extract.com"
	unknown     = "-"
)

// FromUploads creates a Pending candidate for every uploaded CV. The candidate
// name is the file name up to its first dot; details stay unknown until the CV
// is read. Blank file names are skipped.
func FromUploads(fileNames []string) []*recruiting.Candidate {
	out := make([]*recruiting.Candidate, 0, len(fileNames))
	for _, fileName := range fileNames {
		fileName = filepath.Base(strings.TrimSpace(fileName))
		if fileName == "" || fileName == "." || fileName == string(filepath.Separator) {
			continue
		}

		name, _, _ := strings.Cut(fileName, ".")
		if name == "" {
			name = fileName
		}

		out = append(out, &recruiting.Candidate{
			ID:     uuid.NewString(),
			Name:   name,
			Role:   UploadRole,
			Email:  UploadEmail,
			Phone:  unknown,
			Exp:    unknown,
			Salary: unknown,
			Status: recruiting.CandidatePending,
			CVFile: fileName,
		})
	}
	return out
}
