package tracker

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRequiredDocs(t *testing.T) {
	require.Len(t, RequiredDocs(models.ProgramWHE), 10)
	require.Len(t, RequiredDocs(models.ProgramHES), 7)
	require.Nil(t, RequiredDocs(models.ProgramASI), "private pay tracks no checklist")
	require.Nil(t, RequiredDocs("bogus"))
}

func TestDocsCheck(t *testing.T) {
	p := &models.TrackerProject{
		Program: models.ProgramHES,
		Docs: models.DocsMap{
			"Signed Audit Report": true,
			"Invoice":             true,
			"Scope of Work":       false,
			"Not A Real Doc":      true, // off-checklist keys are ignored
		},
	}
	done, total := DocsCheck(p)
	require.Equal(t, 2, done)
	require.Equal(t, 7, total)
}

func TestDocsCheckASI(t *testing.T) {
	p := &models.TrackerProject{Program: models.ProgramASI, Docs: models.DocsMap{"Invoice": true}}
	done, total := DocsCheck(p)
	require.Zero(t, done)
	require.Zero(t, total)
}
