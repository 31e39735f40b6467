package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrowseCmd_Structure(t *testing.T) {
	assert.Equal(t, "browse [paths...]", browseCmd.Use)
	assert.NotNil(t, browseCmd.Flags().Lookup("jd"))
	assert.NotNil(t, browseCmd.Flags().Lookup("query"))
}

func TestBrowseCmd_RequiresQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "", "browse", t.TempDir())
	assert.Error(t, err)
}
