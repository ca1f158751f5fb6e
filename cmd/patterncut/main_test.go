package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
)

// runCLI executes the root command with an isolated config file and returns
// stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")
	return runCLIWithConfig(t, configPath, args...)
}

func runCLIWithConfig(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_JSONToStdout(t *testing.T) {
	out, err := runCLI(t, "generate", "--category", "robe",
		"--measure", "poitrine=92", "--measure", "longueur=100", "--fabric", "coton")
	require.NoError(t, err)

	var plan model.CuttingPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Pieces, 4)
	assert.Equal(t, 25.0, plan.Pieces[0].Width)
	assert.Equal(t, 100.0, plan.Pieces[0].Height)
	assert.Equal(t, "Lavable à 40°C, repassage moyen", plan.Tips)
}

func TestGenerate_YAMLAndAliases(t *testing.T) {
	out, err := runCLI(t, "generate", "-c", "pantalon",
		"-m", "waist circumference=80", "-m", "inseam=78,5", "--format", "yaml")
	require.NoError(t, err)

	var plan model.CuttingPlan
	require.NoError(t, yaml.Unmarshal([]byte(out), &plan))
	band := plan.FindPiece("ceinture")
	require.NotNil(t, band)
	assert.Equal(t, 84.0, band.Width)
}

func TestGenerate_DefaultFabricFromConfig(t *testing.T) {
	out, err := runCLI(t, "generate")
	require.NoError(t, err)

	var plan model.CuttingPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Lavable à 40°C, repassage moyen", plan.Tips)
}

func TestGenerate_MeasurementsFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "mesures.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("poitrine,88\nlongueur,90\n"), 0644))

	out, err := runCLI(t, "generate", "--measurements", csvPath, "--measure", "longueur=110")
	require.NoError(t, err)

	var plan model.CuttingPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	front := plan.FindPiece("devant")
	require.NotNil(t, front)
	assert.Equal(t, 24.0, front.Width)
	assert.Equal(t, 110.0, front.Height)
}

func TestGenerate_BadMeasurementsFile(t *testing.T) {
	_, err := runCLI(t, "generate", "--measurements", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestGenerate_InvalidMeasureFlag(t *testing.T) {
	_, err := runCLI(t, "generate", "--measure", "poitrine")
	assert.ErrorContains(t, err, "expected name=value")

	_, err = runCLI(t, "generate", "--measure", "poitrine=abc")
	assert.ErrorContains(t, err, "invalid value")
}

func TestGenerate_InvalidFlags(t *testing.T) {
	_, err := runCLI(t, "generate", "--format", "xml")
	assert.ErrorContains(t, err, "invalid flags")

	_, err = runCLI(t, "generate", "--waste", "150")
	assert.ErrorContains(t, err, "invalid flags")
}

func TestGenerate_WritesDocuments(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	pdfPath := filepath.Join(dir, "plan.pdf")
	dxfPath := filepath.Join(dir, "plan.dxf")
	xlsxPath := filepath.Join(dir, "plan.xlsx")
	labelsPath := filepath.Join(dir, "labels.pdf")
	gcodePath := filepath.Join(dir, "plan.nc")

	out, err := runCLI(t, "generate", "-c", "haut", "-m", "poitrine=96",
		"--format", "yaml", "--out", planPath,
		"--pdf", pdfPath, "--dxf", dxfPath, "--xlsx", xlsxPath, "--labels", labelsPath,
		"--gcode", gcodePath, "--cutter", "Laser", "--price", "15")
	require.NoError(t, err)
	assert.Empty(t, out)

	for _, p := range []string{planPath, pdfPath, dxfPath, xlsxPath, labelsPath, gcodePath} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}

	plan, err := project.LoadPlan(planPath)
	require.NoError(t, err)
	assert.NotNil(t, plan.FindPiece("col"))

	program, err := os.ReadFile(gcodePath)
	require.NoError(t, err)
	assert.Contains(t, string(program), "M3 S800")
}

func TestRender_SavedPlan(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.json")
	_, err := runCLI(t, "generate", "-c", "jupe", "--out", planPath)
	require.NoError(t, err)

	pdfPath := filepath.Join(dir, "jupe.pdf")
	_, err = runCLI(t, "render", planPath, "-c", "jupe", "--pdf", pdfPath)
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)
}

func TestRender_RequiresOutput(t *testing.T) {
	_, err := runCLI(t, "render", "plan.json")
	assert.ErrorContains(t, err, "nothing to render")
}

func TestCategories(t *testing.T) {
	out, err := runCLI(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "robe")
	assert.Contains(t, out, "devant, dos, manche, doublure")

	out, err = runCLI(t, "categories", "--json")
	require.NoError(t, err)
	var schemas []model.Schema
	require.NoError(t, json.Unmarshal([]byte(out), &schemas))
	assert.Len(t, schemas, 4)
}

func TestConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	cfg := model.DefaultAppConfig()
	cfg.DefaultFabric = "soie"
	require.NoError(t, project.SaveAppConfig(configPath, cfg))

	out, err := runCLIWithConfig(t, configPath, "generate")
	require.NoError(t, err)

	var plan model.CuttingPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Nettoyage à sec recommandé", plan.Tips)
}

func TestServe_InvalidPort(t *testing.T) {
	_, err := runCLI(t, "serve", "--port", "70000")
	assert.ErrorContains(t, err, "invalid port")
}

func TestBackup_ExportAndRestore(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	dataFile := filepath.Join(dir, "patterns.json")

	cfg := model.DefaultAppConfig()
	cfg.DataFile = dataFile
	require.NoError(t, project.SaveAppConfig(configPath, cfg))
	store := model.NewPatternStore(model.NewPattern(model.Pattern{Name: "Robe", Category: "robe"}))
	require.NoError(t, project.SavePatterns(dataFile, store))

	backupPath := filepath.Join(dir, "backup.json")
	_, err := runCLIWithConfig(t, configPath, "backup", "export", backupPath)
	require.NoError(t, err)

	require.NoError(t, os.Remove(dataFile))
	_, err = runCLIWithConfig(t, configPath, "backup", "restore", backupPath)
	require.NoError(t, err)

	restored, err := project.LoadPatterns(dataFile)
	require.NoError(t, err)
	require.Equal(t, 1, restored.Len())
	assert.Equal(t, "Robe", restored.List()[0].Name)
}

func TestParseMeasureFlags(t *testing.T) {
	m, err := parseMeasureFlags([]string{"Bust=92", " tour de taille = 70 ", "custom=5"})
	require.NoError(t, err)
	assert.Equal(t, model.Measurements{"poitrine": 92, "tour_taille": 70, "custom": 5}, m)
}
