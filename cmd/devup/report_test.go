package devup

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/devup/pkg/bootstrap"
	"github.com/arthur-debert/devup/pkg/fsinfo"
)

func samplePlan() *bootstrap.Plan {
	return &bootstrap.Plan{
		Project:   "Hephaestus",
		FSType:    "exfat",
		Tag:       fsinfo.TagNonXattr,
		Relocate:  true,
		TargetDir: "/home/u/.local/share/devup/envs/Hephaestus",
		EnvState:  "absent",
		Version:   "3.12.3",
		VersionOK: true,
		Warnings:  []string{"git core.hooksPath is set to \"/some/path\"; managed hooks will be bypassed"},
	}
}

func TestRenderPlanText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlan(&buf, samplePlan(), formatText))

	out := buf.String()
	assert.Contains(t, out, "Hephaestus")
	assert.Contains(t, out, "exfat")
	assert.Contains(t, out, "relocation:  required")
	assert.Contains(t, out, "/home/u/.local/share/devup/envs/Hephaestus")
	assert.Contains(t, out, "3.12.3")
	assert.Contains(t, out, "warning:")
}

func TestRenderPlanJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlan(&buf, samplePlan(), formatJSON))

	var decoded bootstrap.Plan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Hephaestus", decoded.Project)
	assert.True(t, decoded.Relocate)
	assert.Equal(t, fsinfo.TagNonXattr, decoded.Tag)
}

func TestRenderPlanYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPlan(&buf, samplePlan(), formatYAML))

	var decoded bootstrap.Plan
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Hephaestus", decoded.Project)
	assert.Equal(t, "/home/u/.local/share/devup/envs/Hephaestus", decoded.TargetDir)
}

func TestRenderPlanUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := renderPlan(&buf, samplePlan(), "xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "xml"))
}

func TestRenderPlanNoRelocation(t *testing.T) {
	plan := samplePlan()
	plan.Relocate = false
	plan.TargetDir = ""
	plan.FSType = "ext4"
	plan.Tag = fsinfo.TagXattrCapable
	plan.Warnings = nil

	var buf bytes.Buffer
	require.NoError(t, renderPlan(&buf, plan, formatText))
	assert.Contains(t, buf.String(), "relocation:  not required")
	assert.NotContains(t, buf.String(), "warning:")
}
