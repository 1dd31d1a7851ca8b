package x3dgeom

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func parseScene(t *testing.T, scenePath string) *Scene {
	t.Helper()
	scene, err := ReadScene(scenePath, Options{ErrorMode: StrictErrorMode, Logger: quiet})
	require.NoError(t, err, scenePath)
	return scene
}

func TestTestScenes(t *testing.T) {
	for _, p := range []string{"geometry2d", "metadata", "latin1"} {
		parseScene(t, "testdata/"+p+".x3d")
	}
}

func TestGeometry2DScene(t *testing.T) {
	scene := parseScene(t, "testdata/geometry2d.x3d")

	geom := scene.Geometry()
	kinds := make([]Kind, len(geom))
	for i, e := range geom {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []Kind{
		KindArc2D, KindArcClose2D, KindArcClose2D, KindCircle2D, KindDisk2D,
		KindDisk2D, KindPolyline2D, KindPolypoint2D, KindRectangle2D, KindTriangleSet2D,
	}, kinds)

	for id, want := range map[string]struct{ vertices, arity int }{
		"quarter": {11, 2},
		"pie":     {13, 13},
		"chord":   {12, 12},
		"circle":  {11, 2},
		"ring":    {44, 4},
		"filled":  {11, 11},
		"zigzag":  {4, 2},
		"dots":    {3, 1},
		"box":     {4, 4},
		"tris":    {6, 3},
	} {
		e := scene.Lookup(id)
		require.NotNil(t, e, id)
		assert.Len(t, e.Vertices, want.vertices, id)
		assert.Equal(t, want.arity, e.Arity, id)
	}
	assert.True(t, scene.Lookup("pie").Solid)
	assert.False(t, scene.Lookup("chord").Solid)
	assert.True(t, scene.Lookup("filled").Solid)

	shapes := scene.Parent(scene.Lookup("circle"))
	require.NotNil(t, shapes)
	assert.Equal(t, "Shape", shapes.Tag)

	var reused []*Element
	for _, e := range scene.Elements() {
		reused = append(reused, scene.Refs(e)...)
	}
	assert.Equal(t, []*Element{scene.Lookup("circle"), scene.Lookup("box")}, reused)
}

func TestMetadataScene(t *testing.T) {
	scene := parseScene(t, "testdata/metadata.x3d")

	panel := scene.Lookup("panel")
	require.NotNil(t, panel)
	require.Len(t, panel.Children, 1)
	set := panel.Children[0]
	assert.Equal(t, KindMetadataSet, set.Kind)
	assert.Equal(t, "panel", set.Meta.Name)
	assert.Same(t, panel, scene.Parent(set))

	require.Len(t, set.Children, 5)
	values := set.Children
	assert.Equal(t, []string{"EXIT", "SORTIE"}, values[0].Meta.Strings)
	assert.Equal(t, []float64{1.5}, values[1].Meta.Floats)
	assert.Equal(t, KindMetadataDouble, values[2].Kind)
	assert.Equal(t, []float64{0.25, 0.5}, values[2].Meta.Floats)
	assert.Equal(t, []int32{7, 8, 9}, values[3].Meta.Ints)
	assert.Equal(t, []bool{true, false}, values[4].Meta.Bools)

	knob := scene.Lookup("knob")
	require.NotNil(t, knob)
	assert.Empty(t, knob.Children)
	assert.Equal(t, []*Element{scene.Lookup("author")}, scene.Refs(knob))

	signs := scene.Lookup("signs")
	require.NotNil(t, signs)
	sceneNode := scene.Parent(signs)
	assert.Equal(t, "Scene", sceneNode.Tag)
	assert.Equal(t, []*Element{signs}, scene.Refs(sceneNode))
}

func TestCharset(t *testing.T) {
	scene := parseScene(t, "testdata/latin1.x3d")
	e := scene.Lookup("café")
	require.NotNil(t, e)
	assert.Equal(t, KindPolypoint2D, e.Kind)
}

func TestSceneTree(t *testing.T) {
	scene, err := ReadSceneStream(strings.NewReader(
		`<X3D><Scene><Shape><Circle2D/></Shape></Scene></X3D>`), Options{Logger: quiet})
	require.NoError(t, err)

	all := scene.Elements()
	require.Len(t, all, 5)
	assert.Same(t, scene.Root, all[0])
	assert.Nil(t, scene.Parent(scene.Root))
	for i, e := range all {
		assert.Equal(t, Handle(i), e.Handle())
		assert.Same(t, e, scene.Element(e.Handle()))
		if i > 0 {
			parent := scene.Parent(e)
			require.NotNil(t, parent)
			assert.Contains(t, parent.Children, e)
		}
	}
	assert.Nil(t, scene.Element(NoHandle))
	assert.Nil(t, scene.Element(Handle(len(all))))
}

func TestInvalidDocuments(t *testing.T) {
	for _, doc := range []string{
		"",
		"<?xml version=\"1.0\"?>",
		"<svg></svg>",
		"<X3D></X3D><X3D></X3D>",
		"<X3D><Scene>",
	} {
		scene, err := ReadSceneStream(strings.NewReader(doc), Options{Logger: quiet})
		assert.Error(t, err, doc)
		assert.Nil(t, scene, doc)
	}

	_, err := ReadScene("testdata/missing.x3d", Options{})
	assert.Error(t, err)
}

func TestErrorModes(t *testing.T) {
	const doc = `<X3D><Scene><Shape><Box size="1 1 1"/><Circle2D/></Shape></Scene></X3D>`

	_, err := ReadSceneStream(strings.NewReader(doc), Options{ErrorMode: StrictErrorMode, Logger: quiet})
	assert.ErrorIs(t, err, ErrUnsupportedNode)
	assert.Contains(t, err.Error(), "<Box>")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	scene, err := ReadSceneStream(strings.NewReader(doc), Options{ErrorMode: WarnErrorMode, Logger: logger})
	require.NoError(t, err)
	assert.Len(t, scene.Geometry(), 1)
	assert.Contains(t, logs.String(), "skipping unsupported node")
	assert.Contains(t, logs.String(), "node=Box")

	logs.Reset()
	scene, err = ReadSceneStream(strings.NewReader(doc), Options{ErrorMode: IgnoreErrorMode, Logger: logger})
	require.NoError(t, err)
	assert.Len(t, scene.Geometry(), 1)
	assert.Empty(t, logs.String())
}

func TestParseErrorMode(t *testing.T) {
	for s, want := range map[string]ErrorMode{
		"ignore": IgnoreErrorMode,
		"Warn":   WarnErrorMode,
		"STRICT": StrictErrorMode,
	} {
		got, err := ParseErrorMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, strings.ToLower(s), got.String())
	}
	_, err := ParseErrorMode("panic")
	assert.Error(t, err)
}

func TestSegmentsOption(t *testing.T) {
	scene, err := ReadSceneStream(strings.NewReader(
		`<X3D><Scene><Shape><Circle2D/></Shape></Scene></X3D>`), Options{Segments: 32, Logger: quiet})
	require.NoError(t, err)
	assert.Len(t, scene.Geometry()[0].Vertices, 33)

	_, err = ReadSceneStream(strings.NewReader(`<X3D/>`), Options{Segments: -1, Logger: quiet})
	assert.Error(t, err)
}
