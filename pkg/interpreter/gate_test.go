package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/devup/pkg/errors"
)

func TestEvaluateBoundaries(t *testing.T) {
	req := MustRequirement(DefaultMinVersion)

	tests := []struct {
		version string
		ok      bool
	}{
		{"3.11.0", false},
		{"3.12.0", true},
		{"3.12.3", true},
		{"3.13.0", true},
		{"3.9.6", false},
		{"2.7.18", false},
		{"2.0", false},
		{"4.0", true},
		{"3.12", true},
		{"3.11.99", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			eval, err := req.Evaluate(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, eval.OK)
		})
	}
}

func TestEvaluateParseErrors(t *testing.T) {
	req := MustRequirement(DefaultMinVersion)

	malformed := []string{
		"",
		"3",
		"three.twelve",
		"3.x",
		"x.12",
		"3.",
		".12",
	}

	for _, version := range malformed {
		t.Run("malformed "+version, func(t *testing.T) {
			_, err := req.Evaluate(version)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrVersionParse),
				"expected VERSION_PARSE, got %v", err)
		})
	}
}

func TestEvaluatePatchIgnored(t *testing.T) {
	req := MustRequirement("3.12")

	// The patch component never influences the gate.
	for _, version := range []string{"3.12.0", "3.12.3", "3.12.99"} {
		eval, err := req.Evaluate(version)
		require.NoError(t, err)
		assert.True(t, eval.OK, "version %s", version)
	}
}

func TestEvaluateRecordsComponents(t *testing.T) {
	eval, err := MustRequirement("3.12").Evaluate(" 3.13.1\n")
	require.NoError(t, err)
	assert.Equal(t, 3, eval.Major)
	assert.Equal(t, 13, eval.Minor)
	assert.Equal(t, "3.13.1", eval.Raw)
}

func TestParseRequirement(t *testing.T) {
	req, err := ParseRequirement("3.10")
	require.NoError(t, err)
	assert.Equal(t, Requirement{Major: 3, Minor: 10}, req)
	assert.Equal(t, "3.10", req.String())

	_, err = ParseRequirement("nonsense")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVersionParse))
}

func TestRaisedMinimumChangesOutcome(t *testing.T) {
	// Raising the minimum is configuration, not code: the same detected
	// version gates differently under a different requirement.
	eval, err := MustRequirement("3.12").Evaluate("3.12.1")
	require.NoError(t, err)
	assert.True(t, eval.OK)

	eval, err = MustRequirement("3.13").Evaluate("3.12.1")
	require.NoError(t, err)
	assert.False(t, eval.OK)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		banner   string
		expected string
	}{
		{"Python 3.12.3\n", "3.12.3"},
		{"Python 3.12.0", "3.12.0"},
		{"3.13.0", "3.13.0"},
		{"no version here", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, extractVersion(tt.banner), "banner %q", tt.banner)
	}
}
