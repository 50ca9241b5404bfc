package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testNamespaceYAML = `namespaces:
  - name: ndx-test
    version: 0.2.0
    doc: Test extension.
    author:
      - A. Author
    contact:
      - author@example.org
    schema:
      - namespace: core
        neurodata_types:
          - Device
      - source: ndx-test.extensions.yaml
`

const testExtensionsYAML = `groups:
  - neurodata_type_def: TestDevice
    neurodata_type_inc: Device
    doc: A device.
    attributes:
      - name: model
        dtype: text
        doc: Model.
      - name: spatial_resolution
        dtype: numeric
        dims:
          - width, height
        shape:
          - 2
        doc: Resolution.
        required: false
`

func writeTestDocument(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ndx-test.namespace.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte(testNamespaceYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ndx-test.extensions.yaml"), []byte(testExtensionsYAML), 0o600))
	return nsPath
}

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(writeTestDocument(t))
	require.NoError(t, err)

	assert.Equal(t, "ndx-test", doc.Namespace.Name)
	assert.Equal(t, "0.2.0", doc.Namespace.Version)
	assert.Equal(t, map[string][]string{"core": {"Device"}}, doc.Namespace.ImportedTypes())
	assert.Equal(t, []string{"ndx-test.extensions.yaml"}, doc.Namespace.Sources())
	assert.Equal(t, []string{"TestDevice"}, doc.TypeNames())

	group := doc.Type("TestDevice")
	require.NotNil(t, group)
	assert.Equal(t, "Device", group.NeurodataTypeInc)

	res := group.Attribute("spatial_resolution")
	require.NotNil(t, res)
	assert.False(t, res.IsRequired())
	require.Len(t, res.Shape, 1)
	require.Len(t, res.Shape[0], 1)
	assert.Equal(t, 2, *res.Shape[0][0])
}

func TestLoadDocumentMissingSource(t *testing.T) {
	dir := t.TempDir()
	nsPath := filepath.Join(dir, "ndx-test.namespace.yaml")
	require.NoError(t, os.WriteFile(nsPath, []byte(testNamespaceYAML), 0o600))

	_, err := LoadDocument(nsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ndx-test.extensions.yaml")
}

func TestLoadNamespaceFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.namespace.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespaces: []\n"), 0o600))

	_, err := LoadNamespaceFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	doc, err := LoadDocument(writeTestDocument(t))
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, doc.Save(out))

	reloaded, err := LoadDocument(filepath.Join(out, doc.NamespaceFileName()))
	require.NoError(t, err)
	assert.True(t, EquivalentDocuments(doc, reloaded))
}

// Property: any well-formed document survives save and reload structurally
// unchanged.
func TestDocumentRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := genDocument().Draw(t, "doc")

		dir, err := os.MkdirTemp("", "ndx-roundtrip")
		if err != nil {
			t.Fatalf("tempdir: %v", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		if err := doc.Save(dir); err != nil {
			t.Fatalf("save: %v", err)
		}
		reloaded, err := LoadDocument(filepath.Join(dir, doc.NamespaceFileName()))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !EquivalentDocuments(doc, reloaded) {
			t.Fatalf("document not equivalent after round-trip:\nbefore: %#v\nafter: %#v", doc, reloaded)
		}
	})
}

var (
	genTypeName   = rapid.StringMatching(`[A-Z][A-Za-z0-9]{1,20}`)
	genMemberName = rapid.StringMatching(`[a-z][a-z0-9_]{0,15}`)
	genDoc        = rapid.SampledFrom([]string{
		"Description of the member.",
		"Power applied to each target.",
		"Resolution in pixels.",
	})
	genScalarDType = rapid.SampledFrom([]string{"text", "numeric", "float32", "int32", "bool"})
	genQuantity    = rapid.SampledFrom([]Quantity{"", QuantityOptional, QuantityZeroOrMany, QuantityOneOrMany, "2"})
)

func genDimsShape() *rapid.Generator[struct {
	Dims  Dims
	Shape Shape
}] {
	return rapid.Custom(func(t *rapid.T) struct {
		Dims  Dims
		Shape Shape
	} {
		var out struct {
			Dims  Dims
			Shape Shape
		}
		if !rapid.Bool().Draw(t, "hasDims") {
			return out
		}
		alts := rapid.IntRange(1, 2).Draw(t, "alts")
		for a := 0; a < alts; a++ {
			rank := rapid.IntRange(1, 3).Draw(t, "rank")
			names := make([]string, rank)
			sizes := make([]*int, rank)
			for i := 0; i < rank; i++ {
				names[i] = genMemberName.Draw(t, "dimName")
				if rapid.Bool().Draw(t, "constrained") {
					sizes[i] = FixedSize(rapid.IntRange(1, 16).Draw(t, "size"))
				}
			}
			out.Dims = append(out.Dims, names)
			out.Shape = append(out.Shape, sizes)
		}
		return out
	})
}

func genAttribute() *rapid.Generator[Attribute] {
	return rapid.Custom(func(t *rapid.T) Attribute {
		a := Attribute{
			Name:  genMemberName.Draw(t, "name"),
			DType: Scalar(genScalarDType.Draw(t, "dtype")),
			Doc:   genDoc.Draw(t, "doc"),
		}
		ds := genDimsShape().Draw(t, "dimsShape")
		a.Dims, a.Shape = ds.Dims, ds.Shape
		if rapid.Bool().Draw(t, "optional") {
			a.Required = Optional()
		}
		return a
	})
}

func genDataset() *rapid.Generator[Dataset] {
	return rapid.Custom(func(t *rapid.T) Dataset {
		d := Dataset{
			Name:     genMemberName.Draw(t, "name"),
			Doc:      genDoc.Draw(t, "doc"),
			Quantity: genQuantity.Draw(t, "quantity"),
		}
		if rapid.Bool().Draw(t, "ref") {
			d.DType = ObjectRef(genTypeName.Draw(t, "target"))
		} else {
			d.DType = Scalar(genScalarDType.Draw(t, "dtype"))
		}
		ds := genDimsShape().Draw(t, "dimsShape")
		d.Dims, d.Shape = ds.Dims, ds.Shape
		d.Attributes = rapid.SliceOfN(genAttribute(), 0, 2).Draw(t, "attributes")
		return d
	})
}

func genGroup() *rapid.Generator[Group] {
	return rapid.Custom(func(t *rapid.T) Group {
		return Group{
			NeurodataTypeDef: genTypeName.Draw(t, "def"),
			NeurodataTypeInc: rapid.SampledFrom([]string{"Device", "LabMetaData", "TimeIntervals"}).Draw(t, "inc"),
			Doc:              genDoc.Draw(t, "doc"),
			Attributes:       rapid.SliceOfN(genAttribute(), 0, 3).Draw(t, "attributes"),
			Datasets:         rapid.SliceOfN(genDataset(), 0, 3).Draw(t, "datasets"),
			Links: rapid.SliceOfN(rapid.Custom(func(t *rapid.T) Link {
				return Link{
					Name:       genMemberName.Draw(t, "name"),
					TargetType: genTypeName.Draw(t, "target"),
					Doc:        genDoc.Draw(t, "doc"),
					Quantity:   genQuantity.Draw(t, "quantity"),
				}
			}), 0, 2).Draw(t, "links"),
		}
	})
}

func genDocument() *rapid.Generator[*Document] {
	return rapid.Custom(func(t *rapid.T) *Document {
		name := "ndx-" + rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "nsName")
		return &Document{
			Namespace: Namespace{
				Name:    name,
				Version: "0.1.0",
				Doc:     genDoc.Draw(t, "doc"),
				Author:  []string{"A. Author"},
				Contact: []string{"author@example.org"},
				Schema: []SchemaRef{
					{Namespace: "core", NeurodataTypes: []string{"Device"}},
					{Source: name + ".extensions.yaml"},
				},
			},
			Groups: rapid.SliceOfN(genGroup(), 0, 4).Draw(t, "groups"),
		}
	})
}
