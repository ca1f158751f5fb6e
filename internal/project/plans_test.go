package project

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/PatternCut/internal/engine"
	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() model.CuttingPlan {
	return engine.GenerateCuttingPlan("robe", "", model.Measurements{"poitrine": 92, "longueur": 100}, "coton")
}

func TestSaveAndLoadPlan_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	plan := samplePlan()

	require.NoError(t, SavePlan(path, plan))
	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan, loaded)
}

func TestSaveAndLoadPlan_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := samplePlan()

	require.NoError(t, SavePlan(path, plan))
	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan.Tips, loaded.Tips)
	assert.Equal(t, plan.SewingOrder, loaded.SewingOrder)
	require.Len(t, loaded.Pieces, len(plan.Pieces))
	assert.Equal(t, plan.Pieces[0].Width, loaded.Pieces[0].Width)
	assert.Equal(t, plan.Pieces[2].Quantity, loaded.Pieces[2].Quantity)
}

func TestMarshalPlan_Formats(t *testing.T) {
	plan := samplePlan()

	js, err := MarshalPlan(plan, "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(js), "{"))
	assert.Contains(t, string(js), `"fabricRequirements"`)

	ym, err := MarshalPlan(plan, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(ym), "fabricRequirements:")
	assert.Contains(t, string(ym), "sewingOrder:")

	_, err = MarshalPlan(plan, "xml")
	assert.Error(t, err)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}
