package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/ndx-patterned-ogen/pkg/registry"
	"github.com/catalystneuro/ndx-patterned-ogen/pkg/schema"
)

func validDocument() *schema.Document {
	return &schema.Document{
		Namespace: schema.Namespace{
			Name:    "ndx-test",
			Version: "0.1.0",
			Doc:     "Test extension.",
			Schema: []schema.SchemaRef{
				{Namespace: "core", NeurodataTypes: []string{"Device"}},
				{Source: "ndx-test.extensions.yaml"},
			},
		},
		Groups: []schema.Group{
			{
				NeurodataTypeDef: "TestDevice",
				NeurodataTypeInc: "Device",
				Doc:              "A device.",
				Attributes: []schema.Attribute{
					{
						Name:  "spatial_resolution",
						DType: schema.Scalar("numeric"),
						Dims:  schema.DimNames("width", "height"),
						Shape: schema.ShapeOf(schema.AnySize, schema.AnySize),
						Doc:   "Resolution.",
					},
				},
			},
		},
	}
}

func codes(r *Report) []string {
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.Code
	}
	return out
}

func TestValidDocumentPasses(t *testing.T) {
	report := New(registry.Base()).Document(validDocument())
	assert.False(t, report.HasErrors(), "unexpected issues: %v", report.Issues)
	assert.NoError(t, report.Err())
}

func TestDuplicateTypeName(t *testing.T) {
	doc := validDocument()
	doc.Groups = append(doc.Groups, doc.Groups[0])

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeDuplicateType)
}

func TestUnknownParent(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].NeurodataTypeInc = "NoSuchBase"

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeUnknownParent)
}

func TestParentMayResolveInDocument(t *testing.T) {
	doc := validDocument()
	doc.Groups = append(doc.Groups, schema.Group{
		NeurodataTypeDef: "DerivedDevice",
		NeurodataTypeInc: "TestDevice",
		Doc:              "Derived from a type in the same document.",
	})

	report := New(registry.Base()).Document(doc)
	assert.False(t, report.HasErrors(), "unexpected issues: %v", report.Issues)
}

func TestUnknownLinkTarget(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Links = []schema.Link{
		{Name: "light_source", TargetType: "NoSuchType", Doc: "link"},
	}

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeUnknownTarget)
}

func TestUnknownReferenceTarget(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Datasets = []schema.Dataset{
		{Name: "targets", DType: schema.ObjectRef("NoSuchType"), Doc: "column"},
	}

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeUnknownTarget)
}

func TestInvalidRefType(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Datasets = []schema.Dataset{
		{
			Name:  "targets",
			DType: schema.DType{Ref: &schema.RefSpec{TargetType: "Device", RefType: "region"}},
			Doc:   "column",
		},
	}

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeInvalidReference)
}

func TestShapeRankMismatch(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Attributes[0].Shape = schema.ShapeOf(schema.AnySize)

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeShapeRank)
}

func TestShapeWithoutDims(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Attributes[0].Dims = nil

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeShapeRank)
}

func TestAlternativeCountMismatch(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Attributes[0].Dims = schema.DimAlternatives(
		[]string{"width", "height"},
		[]string{"width", "height", "depth"},
	)

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeShapeRank)
}

func TestDuplicateMemberNames(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Links = []schema.Link{
		{Name: "spatial_resolution", TargetType: "Device", Doc: "collides with the attribute"},
	}

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeDuplicateMember)
}

func TestMissingDocIsWarningOnly(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Doc = ""

	report := New(registry.Base()).Document(doc)
	assert.False(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeMissingDoc)

	errors, warnings := report.Counts()
	assert.Zero(t, errors)
	assert.NotZero(t, warnings)
}

func TestUnknownScalarDTypeIsWarning(t *testing.T) {
	doc := validDocument()
	doc.Groups[0].Attributes[0].DType = schema.Scalar("complex128")

	report := New(registry.Base()).Document(doc)
	assert.False(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeUnknownDType)
}

func TestUnknownImportWarns(t *testing.T) {
	doc := validDocument()
	doc.Namespace.Schema[0].NeurodataTypes = append(doc.Namespace.Schema[0].NeurodataTypes, "MadeUpType")

	report := New(registry.Base()).Document(doc)
	assert.False(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeNamespaceImport)
}

func TestUntypedTopLevelGroup(t *testing.T) {
	doc := validDocument()
	doc.Groups = append(doc.Groups, schema.Group{NeurodataTypeInc: "Device", Doc: "no def"})

	report := New(registry.Base()).Document(doc)
	require.True(t, report.HasErrors())
	assert.Contains(t, codes(report), CodeUntypedGroup)
}

func TestFilesReportsLoadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.namespace.yaml")
	reports := New(registry.Base()).Files(missing)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].HasErrors())
	assert.Error(t, Err(reports))
}

func TestFilesValidatesOnDisk(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ndx-test.namespace.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte(`namespaces:
  - name: ndx-test
    version: 0.1.0
    doc: Test extension.
    schema:
      - source: ndx-test.extensions.yaml
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ndx-test.extensions.yaml"), []byte(`groups:
  - neurodata_type_def: TestDevice
    neurodata_type_inc: Device
    doc: A device.
`), 0o600))

	reports := New(registry.Base()).Files(nsPath)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].HasErrors(), "unexpected issues: %v", reports[0].Issues)
	assert.NoError(t, Err(reports))
	assert.Equal(t, nsPath, reports[0].Source)
	assert.NotEmpty(t, reports[0].ID)
}
