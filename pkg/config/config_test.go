package config

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
)

const (
	testFactory  = "0x1111111111111111111111111111111111111111"
	testToken    = "0x2222222222222222222222222222222222222222"
	testCampaign = "0xfa4be5cbb918e92939171919d6dbbf5349813598"
	testKey      = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ETHEREUM_RPC_URL", "http://localhost:8545")
	t.Setenv("ETHEREUM_PRIVATE_KEY", testKey)
	t.Setenv("CONTRACTS_FACTORY_ADDRESS", testFactory)
	t.Setenv("CONTRACTS_DEPOSIT_TOKEN_ADDRESS", testToken)
	t.Setenv("CONTRACTS_CAMPAIGN_ADDRESS", testCampaign)
	t.Setenv("DONATION_AMOUNT", "10000000000000000")
}

func TestLoad_FromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, testFactory, cfg.Contracts.FactoryAddress)
	assert.Equal(t, 0, big.NewInt(10000000000000000).Cmp(cfg.Donation.Value()))

	// defaults
	assert.True(t, cfg.Approval.Mint)
	assert.False(t, cfg.Campaign.Create)
	assert.Equal(t, "20000000000000000000", cfg.Campaign.Target().String())
	assert.Equal(t, testToken, cfg.Campaign.Asset)
	assert.Equal(t, int32(18), cfg.Token.Decimals)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.OutputPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APPROVAL_MINT", "false")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
ethereum:
  rpc_url: "http://file:8545"
  chain_id: 97
campaign:
  create: true
  title: "Clean Water"
approval:
  mint: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, int64(97), cfg.Ethereum.ChainID)
	assert.True(t, cfg.Campaign.Create)
	assert.Equal(t, "Clean Water", cfg.Campaign.Title)
	assert.False(t, cfg.Approval.Mint)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		unset string
		key   string
	}{
		{unset: "ETHEREUM_RPC_URL", key: "ethereum.rpc_url"},
		{unset: "ETHEREUM_PRIVATE_KEY", key: "ethereum.private_key"},
		{unset: "CONTRACTS_FACTORY_ADDRESS", key: "contracts.factory_address"},
		{unset: "CONTRACTS_DEPOSIT_TOKEN_ADDRESS", key: "contracts.deposit_token_address"},
		{unset: "CONTRACTS_CAMPAIGN_ADDRESS", key: "contracts.campaign_address"},
		{unset: "DONATION_AMOUNT", key: "donation.amount"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration), "got %v", err)
			assert.Contains(t, err.Error(), tt.key+" is required")
		})
	}
}

func TestLoad_MalformedAddress(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONTRACTS_CAMPAIGN_ADDRESS", "0xnot-an-address")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryAddressParse), "got %v", err)
	assert.Contains(t, err.Error(), "contracts.campaign_address")
}

func TestLoad_InvalidAmount(t *testing.T) {
	tests := map[string]string{
		"negative":     "-1",
		"fraction":     "1.5",
		"zero":         "0",
		"not a number": "ten",
		// 2^256
		"overflow": "115792089237316195423570985008687907853269984665640564039457584007913129639936",
	}

	for name, amount := range tests {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("DONATION_AMOUNT", amount)

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration), "got %v", err)
		})
	}
}

func TestLoad_MaxGasPrice(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ETHEREUM_MAX_GAS_PRICE", "2000000000")

	cfg, err := Load("")
	require.NoError(t, err)

	gasCap, err := cfg.Ethereum.GasPriceCap()
	require.NoError(t, err)
	require.NotNil(t, gasCap)
	assert.Equal(t, "2000000000", gasCap.String())

	// callers get a copy
	gasCap.SetInt64(1)
	again, err := cfg.Ethereum.GasPriceCap()
	require.NoError(t, err)
	assert.Equal(t, "2000000000", again.String())
}

func TestLoad_MaxGasPriceUnset(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	gasCap, err := cfg.Ethereum.GasPriceCap()
	require.NoError(t, err)
	assert.Nil(t, gasCap)
}

func TestLoad_InvalidMaxGasPrice(t *testing.T) {
	tests := map[string]string{
		"negative":     "-5",
		"fraction":     "1.5",
		"exponent":     "1e9",
		"not a number": "cheap",
	}

	for name, price := range tests {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("ETHEREUM_MAX_GAS_PRICE", price)

			_, err := Load("")
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration), "got %v", err)
			assert.Contains(t, err.Error(), "ethereum.max_gas_price")
		})
	}
}

func TestGasPriceCap_UnloadedConfig(t *testing.T) {
	gasCap, err := EthereumConfig{MaxGasPrice: "7"}.GasPriceCap()
	require.NoError(t, err)
	assert.Equal(t, int64(7), gasCap.Int64())

	_, err = EthereumConfig{MaxGasPrice: "-7"}.GasPriceCap()
	require.Error(t, err)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
}

func TestParseAmount(t *testing.T) {
	n, err := ParseAmount("1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", n.String())

	// 2^256 - 1
	max := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	n, err = ParseAmount(max)
	require.NoError(t, err)
	assert.Equal(t, max, n.String())
}

func TestLoadEnvFile(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CAMPAIGN_TITLE", "")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CAMPAIGN_TITLE=From dotenv\nDONATION_AMOUNT=1\n"), 0o600))

	// godotenv does not override variables that are already set,
	// so clear the title to let the file provide it.
	require.NoError(t, os.Unsetenv("CAMPAIGN_TITLE"))
	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "From dotenv", cfg.Campaign.Title)
	assert.Equal(t, "10000000000000000", cfg.Donation.Amount)

	err = LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, apperrors.Is(err, apperrors.CategoryConfiguration))
}

func TestRedacted(t *testing.T) {
	cfg := Config{Ethereum: EthereumConfig{PrivateKey: testKey}}

	out := cfg.Redacted()
	assert.Equal(t, "<redacted>", out.Ethereum.PrivateKey)
	assert.Equal(t, testKey, cfg.Ethereum.PrivateKey)
}
