package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aci318 ")
	assert.Contains(t, out, "ACI 318-19")
}

func TestMoment(t *testing.T) {
	out, err := run(t, "moment", "--dead", "50", "--live", "30", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Factored moment Mu = 108.00 kip-ft")
	assert.Contains(t, out, "GOVERNS")
}

func TestRebar(t *testing.T) {
	out, err := run(t, "rebar", "--width", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "#8")
	assert.Contains(t, out, "Max in 12 in")
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, "analyze", "-b", "12", "--height", "18", "-t", "3-#8@16.5")
	require.NoError(t, err)
	assert.Contains(t, out, "RECTANGULAR SECTION ANALYSIS")
	assert.Contains(t, out, "φMn = 157.39 kip-ft")
	assert.Contains(t, out, "tension-controlled")
}

func TestAnalyze_Invalid(t *testing.T) {
	_, err := run(t, "analyze", "-b", "12", "--height", "18", "-t", "3-#13@16.5")
	assert.Error(t, err)
}

func TestShear_Design(t *testing.T) {
	out, err := run(t, "shear", "-b", "12", "--height", "18", "-t", "3-#8@16.5", "--vu", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "USE #3 x2 legs @ 7.5 in")
	assert.Contains(t, out, "strength")
}

func TestBeamAnalyze(t *testing.T) {
	out, err := run(t, "beam", "analyze", "--width", "12", "--depth", "16.5", "--as", "2.37")
	require.NoError(t, err)
	assert.Contains(t, out, "φMn = 157.39 kip-ft")
}

func TestBeamDoubly_SinglyAdequate(t *testing.T) {
	out, err := run(t, "beam", "doubly", "--width", "12", "--depth", "16.5", "--mu", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Singly reinforced adequate")
}

func TestDesign(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "designs.xlsx")
	out, err := run(t, "design", "--mu", "100",
		"--min-width", "12", "--max-width", "12",
		"--min-height", "18", "--max-height", "20",
		"--first", "--xlsx", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "DESIGNS (1 of 1)")
	assert.Contains(t, out, "12 x 18")

	info, err := os.Stat(xlsx)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestDesign_BadDedupe(t *testing.T) {
	_, err := run(t, "design", "--mu", "100", "--min-width", "12", "--max-width", "12",
		"--min-height", "18", "--max-height", "18", "--first=false", "--xlsx", "", "--dedupe", "height")
	assert.ErrorContains(t, err, "unknown --dedupe")
}

func TestProportion(t *testing.T) {
	out, err := run(t, "proportion", "--span", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "Depth:")
	assert.Contains(t, out, "18 in")
	assert.Contains(t, out, "aci318 design --mu")
}

func TestLogFormat_Unknown(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "version")
	assert.ErrorContains(t, err, "unknown log format")
	_, err = run(t, "--log-format", "text", "version")
	require.NoError(t, err)
}
