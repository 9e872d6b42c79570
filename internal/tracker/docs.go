package tracker

import "retrofit-tracker/internal/models"

// Required-document checklists per program. ASI (private pay) tracks none.
var (
	DocsWHE = []string{
		"Signed Audit Report",
		"Manual J",
		"Manual S",
		"Customer Auth Form",
		"Pre-install Photos",
		"Scope of Work",
		"AHRI Certificate",
		"Post Inspection Form",
		"Customer Acknowledgement",
		"Invoice",
	}
	DocsHES = []string{
		"Signed Audit Report",
		"Customer Auth Form",
		"Pre-install Photos",
		"Scope of Work",
		"Post Inspection Form",
		"Customer Acknowledgement",
		"Invoice",
	}
)

func RequiredDocs(program string) []string {
	switch program {
	case models.ProgramWHE:
		return DocsWHE
	case models.ProgramHES:
		return DocsHES
	default:
		return nil
	}
}

// DocsCheck counts checked-off required documents for a project.
func DocsCheck(p *models.TrackerProject) (done, total int) {
	docs := RequiredDocs(p.Program)
	for _, d := range docs {
		if p.Docs[d] {
			done++
		}
	}
	return done, len(docs)
}
