package relocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/fsinfo"
)

func TestPlanNonXattrRelocates(t *testing.T) {
	p := NewPlanner("/home/u/.local/share/devup/envs")

	plan, err := p.Plan(fsinfo.TagNonXattr, "Hephaestus")
	require.NoError(t, err)
	assert.True(t, plan.ShouldRelocate)
	assert.Equal(t, "/home/u/.local/share/devup/envs/Hephaestus", plan.TargetDir)
}

func TestPlanXattrCapableStaysPut(t *testing.T) {
	p := NewPlanner("/data/envs")

	plan, err := p.Plan(fsinfo.TagXattrCapable, "Hephaestus")
	require.NoError(t, err)
	assert.False(t, plan.ShouldRelocate)
	assert.Empty(t, plan.TargetDir)
}

func TestPlanIsIdempotent(t *testing.T) {
	p := NewPlanner("/data/envs")

	first, err := p.Plan(fsinfo.TagNonXattr, "Hephaestus")
	require.NoError(t, err)
	second, err := p.Plan(fsinfo.TagNonXattr, "Hephaestus")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs must yield the same plan")
}

func TestPlanRejectsBadNames(t *testing.T) {
	p := NewPlanner("/data/envs")

	_, err := p.Plan(fsinfo.TagNonXattr, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = p.Plan(fsinfo.TagNonXattr, "a/b")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
