package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	base := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		err      error
		category Category
		exitCode int
	}{
		{name: "nil", err: nil, category: CategoryNoError, exitCode: 0},
		{name: "plain", err: base, category: CategoryGeneralError, exitCode: 1},
		{name: "configuration", err: ConfigurationError(nil, "ethereum.rpc_url is required"), category: CategoryConfiguration, exitCode: 2},
		{name: "address", err: AddressParseError(base, "contracts.factory_address"), category: CategoryAddressParse, exitCode: 3},
		{name: "signing", err: SigningError(base, "invalid private key"), category: CategorySigning, exitCode: 4},
		{name: "network", err: NetworkError(base, "failed to send"), category: CategoryNetwork, exitCode: 5},
		{name: "validation", err: ValidationError(nil, "segments empty"), category: CategoryValidation, exitCode: 6},
		{name: "wrapped", err: fmt.Errorf("approve: %w", NetworkError(base, "reverted")), category: CategoryNetwork, exitCode: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, CategoryOf(tt.err))
			assert.Equal(t, tt.exitCode, ExitCode(tt.err))
		})
	}
}

func TestServiceError_UnwrapAndMessage(t *testing.T) {
	base := errors.New("nonce too low")
	err := NetworkError(base, "failed to submit approve transaction")

	require.ErrorIs(t, err, base)
	assert.True(t, Is(err, CategoryNetwork))
	assert.False(t, Is(err, CategorySigning))
	assert.Equal(t, "failed to submit approve transaction: nonce too low", err.Error())
	assert.Equal(t, "donation.amount is required", ConfigurationError(nil, "donation.amount is required").Error())
}
