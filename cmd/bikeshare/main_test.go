package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-01-02 08:00:00,2017-01-02 08:10:00,600,A,B,Subscriber,Male,1985.0
1,2017-02-01 09:15:00,2017-02-01 09:20:00,300,B,C,Customer,,
2,2017-02-05 17:00:00,2017-02-05 17:30:00,1800,A,B,Subscriber,Female,1990.0
`

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeChicago(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(chicagoCSV), 0o644))
	return dir
}

func TestCitiesCommand(t *testing.T) {
	dir := writeChicago(t)
	out, err := executeRoot(t, "", "cities", "--data-dir", dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Chicago")
	assert.True(t, strings.HasSuffix(lines[1], "ok"))
	assert.True(t, strings.HasSuffix(lines[3], "missing"))
}

func TestReportCommand(t *testing.T) {
	dir := writeChicago(t)
	out, err := executeRoot(t, "", "report", "--data-dir", dir, "--no-color", "--city", "chicago", "--month", "february")
	require.NoError(t, err)

	assert.Contains(t, out, "Filters -> city : Chicago, month: February, day: None")
	assert.Contains(t, out, "Most common start station is : 'A' with count : 1")
	assert.NotContains(t, out, "Would you like")
}

func TestReportRejectsMonthAndDay(t *testing.T) {
	dir := writeChicago(t)
	_, err := executeRoot(t, "", "report", "--data-dir", dir, "--city", "chicago", "--month", "january", "--day", "1")
	assert.Error(t, err)
}

func TestReportRequiresCity(t *testing.T) {
	_, err := executeRoot(t, "", "report")
	assert.Error(t, err)
}

func TestInteractiveSession(t *testing.T) {
	dir := writeChicago(t)
	out, err := executeRoot(t, "chicago\nnal\nno\nno\n", "--data-dir", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Hello! Let's explore some US bikeshare data!")
	assert.Contains(t, out, "Most common start station is : 'A' with count : 2")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeRoot(t, "", "cities", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level")
}

func TestConfigOverridesDataDir(t *testing.T) {
	dir := writeChicago(t)
	cfgHome := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, "bikeshare"), 0o755))
	cfg := "[data]\ndir = " + `"` + filepath.ToSlash(dir) + `"` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgHome, "bikeshare", "config.toml"), []byte(cfg), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cities"})
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), filepath.Join(dir, "chicago.csv"))
}

func TestDefaultConfigTemplateMentionsKeys(t *testing.T) {
	tmpl := defaultConfigTemplate()
	assert.Contains(t, tmpl, "[data]")
	assert.Contains(t, tmpl, "# log-level = \"warn\"")
}
