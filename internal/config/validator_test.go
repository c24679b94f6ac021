package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	cberrors "github.com/alexisbeaulieu97/counterbuddy/pkg/errors"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		s := DefaultSettings()
		require.NoError(t, ValidateSettings(&s))
	})

	t.Run("equal limits are valid", func(t *testing.T) {
		t.Parallel()
		s := Settings{Step: 1, UpperLimit: 3, LowerLimit: 3}
		require.NoError(t, ValidateSettings(&s))
	})

	t.Run("nil settings", func(t *testing.T) {
		t.Parallel()
		err := ValidateSettings(nil)
		var validationErr *cberrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("negative step", func(t *testing.T) {
		t.Parallel()
		s := Settings{Step: -2, UpperLimit: 10}
		err := ValidateSettings(&s)
		var validationErr *cberrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "step", validationErr.Field)
	})
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}
