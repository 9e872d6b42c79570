package tracker

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPermitProgress(t *testing.T) {
	require.Equal(t, 0, PermitProgress("N/A"))
	require.Equal(t, 0, PermitProgress(""))
	require.Equal(t, 17, PermitProgress("Not Applied"))
	require.Equal(t, 33, PermitProgress("Applied"))
	require.Equal(t, 50, PermitProgress("Approved"))
	require.Equal(t, 67, PermitProgress("Issued"))
	require.Equal(t, 83, PermitProgress("Final Inspection"))
	require.Equal(t, 100, PermitProgress("Closed"))
}

func TestPermitPending(t *testing.T) {
	require.True(t, PermitPending("Applied"))
	require.True(t, PermitPending("Approved"))
	require.False(t, PermitPending("Issued"))
	require.False(t, PermitPending("Not Applied"))
	require.False(t, PermitPending("N/A"))
}

func TestPermitAging(t *testing.T) {
	p := &models.TrackerProject{
		PermitStatus:      "Applied",
		PermitAppliedDate: "2026-08-01",
	}
	notes := PermitAging(p, "2026-08-28")
	require.Equal(t, []string{"27 days since applied, not yet issued"}, notes)

	p.PermitAppliedDate = "2026-08-20"
	require.Empty(t, PermitAging(p, "2026-08-28"), "under the threshold")
}

func TestPermitAgingInspectionPending(t *testing.T) {
	p := &models.TrackerProject{
		PermitStatus:     "Issued",
		PermitIssuedDate: "2026-07-01",
	}
	notes := PermitAging(p, "2026-08-28")
	require.Equal(t, []string{"58 days since issued, inspection pending"}, notes)

	p.PermitStatus = "Closed"
	require.Empty(t, PermitAging(p, "2026-08-28"), "closed permits do not age")

	p.PermitStatus = "Issued"
	p.PermitInspectionDate = "2026-08-15"
	require.Empty(t, PermitAging(p, "2026-08-28"))
}
