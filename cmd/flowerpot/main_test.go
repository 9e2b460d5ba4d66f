package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kd9vfw/flowerpot/internal/planner"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

func TestRunPrintsLengths(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, planner.PlanRequest{Label: "cli", FreqMHz: 127.0})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "127.000 MHz (airband)")
	assert.Contains(t, got, "sleeve")
	assert.Contains(t, got, "radiator")
	assert.Contains(t, got, "601.9")
	assert.Contains(t, got, "590.1")
	assert.Contains(t, got, "1143.7")
	assert.Contains(t, got, "9 sections")
}

func TestRunInvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, planner.PlanRequest{Label: "cli", FreqMHz: -5})
	require.Error(t, err)
	assert.ErrorIs(t, err, rf.ErrInvalidInput)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--band", "2m", "--trim-margin", "0"})

	require.NoError(t, cmd.Execute())
	got := out.String()
	assert.Contains(t, got, "146.000 MHz (2m)")

	// Zero margin: cut equals trim-to on every row.
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "sleeve") || strings.HasPrefix(line, "radiator") {
			fields := strings.Fields(line)
			require.Len(t, fields, 3)
			assert.Equal(t, fields[1], fields[2])
		}
	}
}

func TestRootCommandRejectsMissingOperatingPoint(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestBandsCommand(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bands"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "airband")
	assert.Contains(t, out.String(), "marine")
}
