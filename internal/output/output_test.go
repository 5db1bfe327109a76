package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCLIError_Error(t *testing.T) {
	err := &CLIError{Message: "validation failed"}
	assert.Equal(t, "validation failed", err.Error())

	wrapped := WrapError(errors.New("boom"), "request failed")
	assert.Equal(t, "request failed: boom", wrapped.Error())
}

func TestCLIError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, "request failed")
	assert.ErrorIs(t, err, cause)
}

func TestErrorLines_FixSurvivesWrapping(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	base := &CLIError{
		Message: "--resource-group is required",
		Fix:     "pass -g or set defaults.resourceGroup",
	}

	msg, fix := errorLines(fmt.Errorf("running command: %w", base))
	assert.Equal(t, "--resource-group is required", msg)
	assert.Equal(t, "Fix: pass -g or set defaults.resourceGroup", fix)
}

func TestErrorLines_PlainError(t *testing.T) {
	msg, fix := errorLines(errors.New("boom"))
	assert.Equal(t, "boom", msg)
	assert.Empty(t, fix)
}

func TestStyles_RenderMessage(t *testing.T) {
	for _, style := range []lipgloss.Style{StyleTitle, StyleSuccess, StyleError, StyleMuted} {
		assert.Contains(t, style.Render("vnet1"), "vnet1")
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColor())
}

func TestSpinner_StartStop(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	s := NewSpinner("waiting")
	s.Start()
	s.Stop()
	s.Stop() // second Stop must not panic
}
