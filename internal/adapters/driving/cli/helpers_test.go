package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resrank/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resrank/internal/core/services"
	"github.com/custodia-labs/resrank/internal/extractors"
)

// setupTestServices wires real services over an in-memory config store and
// returns a function restoring the previous services.
func setupTestServices() func() {
	origRanking, origSettings := rankingService, settingsService

	settings := services.NewSettingsService(memory.NewConfigStore())
	registry := extractors.NewCachingRegistry(extractors.DefaultRegistry(), memory.NewExtractionCache())
	SetServices(services.NewRankingService(registry, services.WithSettings(settings)), settings)

	return func() {
		SetServices(origRanking, origSettings)
	}
}

// executeCommand runs the root command with args and returns its combined
// output. Flags are reset first since cobra keeps them between runs.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
	for _, q := range []*queryFlags{&rankQuery, &keywordsQuery, &highlightQuery, &previewQuery, &watchQuery, &browseQuery} {
		q.reset()
	}
}

// writeResumes creates a folder of plain-text resumes.
func writeResumes(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}
