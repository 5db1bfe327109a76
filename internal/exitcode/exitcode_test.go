package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayeletshpigelman/azure-cli/internal/validate"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, OK},
		{"plain error", errors.New("boom"), Generic},
		{"explicit code", Wrap(Azure, errors.New("throttled")), Azure},
		{"config error", validate.NewConfigError("Please specify --lb-name."), Validation},
		{"conflict error", validate.NewConflictError("Cannot combine --a and --b."), Conflict},
		{
			"wrapped config error",
			fmt.Errorf("nic create: %w", validate.NewConfigError("Please specify --vnet-name.")),
			Validation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.err))
		})
	}
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap(Azure, nil))
}

func TestError_Unwrap(t *testing.T) {
	cause := validate.NewConflictError("Cannot combine --a and --b.")
	err := Wrap(Conflict, fmt.Errorf("lb create: %w", cause))

	var conflict *validate.ConflictError
	assert.ErrorAs(t, err, &conflict)
}
