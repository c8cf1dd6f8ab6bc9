package seed

import (
	"testing"

	"github.com/google/uuid"

	"github.com/spigell/hiring-desk/internal/recruiting"
)

func TestFromUploads(t *testing.T) {
	got := FromUploads([]string{"Jane Doe.pdf", "cv.final.docx", "uploads/omar", "  ", ".pdf"})

	tests := []struct {
		name   string
		cvFile string
	}{
		{name: "Jane Doe", cvFile: "Jane Doe.pdf"},
		{name: "cv", cvFile: "cv.final.docx"},
		{name: "omar", cvFile: "omar"},
		{name: ".pdf", cvFile: ".pdf"},
	}

	if len(got) != len(tests) {
		t.Fatalf("expected %d candidates, got %d", len(tests), len(got))
	}

	seen := map[string]bool{}
	for i, tt := range tests {
		c := got[i]
		if c.Name != tt.name || c.CVFile != tt.cvFile {
			t.Fatalf("candidate %d: got name %q file %q, want %q %q", i, c.Name, c.CVFile, tt.name, tt.cvFile)
		}
		if c.Role != UploadRole || c.Email != UploadEmail || c.Phone != "-" || c.Exp != "-" || c.Salary != "-" {
			t.Fatalf("candidate %d: unexpected placeholders %+v", i, c)
		}
		if c.Status != recruiting.CandidatePending || c.Scored() {
			t.Fatalf("candidate %d: expected unscored Pending candidate", i)
		}
		if _, err := uuid.Parse(c.ID); err != nil {
			t.Fatalf("candidate %d: id %q is not a uuid", i, c.ID)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}
