package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
	"github.com/chainsafe/campaign-client/pkg/metadata"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(append([]string{"campaign"}, args...))
	return out.String(), err
}

func TestDecodeMetadataCommand(t *testing.T) {
	out, err := runApp(t, "decode-metadata", "0x7b227469746c65223a2248656c6c6f227d")
	require.NoError(t, err)
	assert.Equal(t, "Title: Hello\n", out)
}

func TestDecodeMetadataCommand_Errors(t *testing.T) {
	_, err := runApp(t, "decode-metadata", "0x7b2274697469656c223a2248656c6c6f227d")
	require.ErrorIs(t, err, metadata.ErrFormat)

	_, err = runApp(t, "decode-metadata")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryValidation))
}

func TestConfigCommand_RedactsKey(t *testing.T) {
	t.Setenv("ETHEREUM_RPC_URL", "http://localhost:8545")
	t.Setenv("ETHEREUM_PRIVATE_KEY", "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	t.Setenv("CONTRACTS_FACTORY_ADDRESS", "0x1111111111111111111111111111111111111111")
	t.Setenv("CONTRACTS_DEPOSIT_TOKEN_ADDRESS", "0x2222222222222222222222222222222222222222")
	t.Setenv("CONTRACTS_CAMPAIGN_ADDRESS", "0xfa4be5cbb918e92939171919d6dbbf5349813598")
	t.Setenv("DONATION_AMOUNT", "10000000000000000")

	out, err := runApp(t, "config")
	require.NoError(t, err)
	assert.NotContains(t, out, "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")

	var dump map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &dump))
	assert.Equal(t, "<redacted>", dump["ethereum"]["private_key"])
	assert.Equal(t, "10000000000000000", dump["donation"]["amount"])
	assert.Equal(t, true, dump["approval"]["mint"])
}

func TestConfigCommand_MissingKey(t *testing.T) {
	t.Setenv("ETHEREUM_RPC_URL", "")

	_, err := runApp(t, "config")
	require.Error(t, err)
	assert.Equal(t, 2, apperrors.ExitCode(err))
}
