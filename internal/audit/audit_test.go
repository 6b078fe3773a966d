package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)

	require.NoError(t, store.Record("admin@example.com", ActionJobDelete, "5", "Engineer"))
	require.NoError(t, store.Record("admin@example.com", ActionInquiryRead, "3", ""))

	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// most recent first
	assert.Equal(t, ActionInquiryRead, entries[0].Action)
	assert.Equal(t, ActionJobDelete, entries[1].Action)
	assert.Equal(t, "5", entries[1].EntityID)
	assert.NotEmpty(t, entries[0].ID)
}

func TestRecent_DefaultLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)

	entries, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
