package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/ogen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportThenValidate(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "export", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ndx-patterned-ogen.namespace.yaml")
	assert.Contains(t, out, "ndx-patterned-ogen.extensions.yaml")

	nsPath := filepath.Join(dir, "ndx-patterned-ogen.namespace.yaml")
	require.FileExists(t, nsPath)
	require.FileExists(t, filepath.Join(dir, "ndx-patterned-ogen.extensions.yaml"))

	out, err = execute(t, "validate", nsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestValidateFailsOnBrokenSchema(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ndx-broken.namespace.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte(`namespaces:
  - name: ndx-broken
    version: 0.1.0
    doc: Broken extension.
    schema:
      - source: ndx-broken.extensions.yaml
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ndx-broken.extensions.yaml"), []byte(`groups:
  - neurodata_type_def: Orphan
    neurodata_type_inc: NoSuchBase
    doc: Parent does not resolve.
`), 0o600))

	out, err := execute(t, "validate", nsPath)
	require.Error(t, err)
	assert.Contains(t, out, "unknown-parent")
	assert.Contains(t, out, "FAILED")
}

func TestValidateWritesReport(t *testing.T) {
	specDir := t.TempDir()
	require.NoError(t, ogen.Document().Save(specDir))
	nsPath := filepath.Join(specDir, "ndx-patterned-ogen.namespace.yaml")

	reportPath := filepath.Join(t.TempDir(), "report.json")
	_, err := execute(t, "validate", nsPath, "--report", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report struct {
		Reports []struct {
			ID     string `json:"id"`
			Source string `json:"source"`
			Issues []struct {
				Severity string `json:"severity"`
			} `json:"issues"`
		} `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	require.Len(t, report.Reports, 1)
	assert.NotEmpty(t, report.Reports[0].ID)
	assert.Equal(t, nsPath, report.Reports[0].Source)
	assert.Empty(t, report.Reports[0].Issues)
}

func TestTypesListsExtension(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "ndx-patterned-ogen 0.1.0")
	assert.Contains(t, out, "PatternedOptogeneticStimulusTable")
	assert.Contains(t, out, "extends TimeIntervals")
}

func TestDescribeType(t *testing.T) {
	out, err := execute(t, "describe", "LightSource")
	require.NoError(t, err)
	assert.Contains(t, out, "neurodata_type_def: LightSource")
	assert.Contains(t, out, "stimulation_wavelength")

	_, err = execute(t, "describe", "NoSuchType")
	assert.Error(t, err)
}
