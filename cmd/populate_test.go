package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPopulateCmd_Exists verifies getPopulateCmd returns
// a valid command.
func TestGetPopulateCmd_Exists(t *testing.T) {
	cmd := getPopulateCmd()
	require.NotNil(t, cmd, "Populate command should exist")
	assert.Equal(t, "populate", cmd.Use,
		"Command name should be populate")
}

// TestGetPopulateCmd_Alias verifies the ingest alias.
func TestGetPopulateCmd_Alias(t *testing.T) {
	cmd := getPopulateCmd()
	assert.Contains(t, cmd.Aliases, "ingest",
		"populate should be callable as ingest")
}

// TestGetPopulateCmd_Descriptions verifies descriptions mention
// the key behaviors.
func TestGetPopulateCmd_Descriptions(t *testing.T) {
	cmd := getPopulateCmd()

	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Long, "transaction",
		"Long description should mention transactional ingest")
	assert.Contains(t, cmd.Long, "NULL",
		"Long description should document NULL for absent ratings")
	assert.Contains(t, cmd.Long, "survey.yaml",
		"Long description should name the default survey file")
}

// TestGetPopulateCmd_SurveyFlag verifies --survey flag exists.
func TestGetPopulateCmd_SurveyFlag(t *testing.T) {
	cmd := getPopulateCmd()

	surveyFlag := cmd.Flags().Lookup("survey")
	require.NotNil(t, surveyFlag,
		"--survey flag should exist")

	assert.Equal(t, "s", surveyFlag.Shorthand,
		"Short form should be -s")
	assert.Equal(t, "", surveyFlag.DefValue,
		"Default should be empty (fall back to config dir)")
}

// TestGetPopulateCmd_HelpText verifies help text content.
func TestGetPopulateCmd_HelpText(t *testing.T) {
	cmd := getPopulateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "ratedb populate",
		"Help should show basic example")
	assert.Contains(t, helpText, "--survey",
		"Help should mention --survey flag")
}

// TestGetPopulateCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetPopulateCmd_IndependentInstances(t *testing.T) {
	cmd1 := getPopulateCmd()
	cmd2 := getPopulateCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")
}
