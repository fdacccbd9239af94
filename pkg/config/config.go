package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
)

const redacted = "<redacted>"

// Config represents the application configuration
type Config struct {
	Ethereum   EthereumConfig   `mapstructure:"ethereum" yaml:"ethereum"`
	Contracts  ContractsConfig  `mapstructure:"contracts" yaml:"contracts"`
	Donation   DonationConfig   `mapstructure:"donation" yaml:"donation"`
	Approval   ApprovalConfig   `mapstructure:"approval" yaml:"approval"`
	Campaign   CampaignConfig   `mapstructure:"campaign" yaml:"campaign"`
	Token      TokenConfig      `mapstructure:"token" yaml:"token"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Monitoring MonitoringConfig `mapstructure:"monitoring" yaml:"monitoring"`
}

// EthereumConfig contains Ethereum client settings
type EthereumConfig struct {
	RPCURL      string `mapstructure:"rpc_url" yaml:"rpc_url" validate:"required,url"`
	PrivateKey  string `mapstructure:"private_key" yaml:"private_key" validate:"required"`
	ChainID     int64  `mapstructure:"chain_id" yaml:"chain_id" validate:"gte=0"`
	GasLimit    uint64 `mapstructure:"gas_limit" yaml:"gas_limit"`
	MaxGasPrice string `mapstructure:"max_gas_price" yaml:"max_gas_price"`

	maxGasPrice *big.Int
}

// GasPriceCap returns the configured gas price ceiling in wei, or nil when none is set
func (e EthereumConfig) GasPriceCap() (*big.Int, error) {
	if e.maxGasPrice != nil {
		return new(big.Int).Set(e.maxGasPrice), nil
	}
	if strings.TrimSpace(e.MaxGasPrice) == "" {
		return nil, nil
	}
	return ParseAmount(e.MaxGasPrice)
}

// ContractsConfig holds the addresses of the deployed contracts
type ContractsConfig struct {
	FactoryAddress      string `mapstructure:"factory_address" yaml:"factory_address" validate:"required,eth_addr"`
	DepositTokenAddress string `mapstructure:"deposit_token_address" yaml:"deposit_token_address" validate:"required,eth_addr"`
	CampaignAddress     string `mapstructure:"campaign_address" yaml:"campaign_address" validate:"required,eth_addr"`
}

// Factory returns the campaign factory address
func (c ContractsConfig) Factory() common.Address {
	return common.HexToAddress(c.FactoryAddress)
}

// DepositToken returns the deposit token address
func (c ContractsConfig) DepositToken() common.Address {
	return common.HexToAddress(c.DepositTokenAddress)
}

// Campaign returns the target campaign address
func (c ContractsConfig) Campaign() common.Address {
	return common.HexToAddress(c.CampaignAddress)
}

// DonationConfig contains the donation settings. Amount is in the token's smallest unit.
type DonationConfig struct {
	Amount string `mapstructure:"amount" yaml:"amount" validate:"required"`

	amount *big.Int
}

// Value returns the parsed donation amount
func (d DonationConfig) Value() *big.Int {
	if d.amount == nil {
		return nil
	}
	return new(big.Int).Set(d.amount)
}

// ApprovalConfig controls the allowance step
type ApprovalConfig struct {
	// Mint mints the approved amount to the signer before approving.
	Mint bool `mapstructure:"mint" yaml:"mint" default:"true"`
}

// CampaignConfig contains the settings used when creating a campaign
type CampaignConfig struct {
	Create       bool   `mapstructure:"create" yaml:"create"`
	TargetAmount string `mapstructure:"target_amount" yaml:"target_amount" default:"20000000000000000000" validate:"required"`
	Asset        string `mapstructure:"asset" yaml:"asset" validate:"omitempty,eth_addr"`
	Title        string `mapstructure:"title" yaml:"title"`

	targetAmount *big.Int
}

// Target returns the parsed target amount
func (c CampaignConfig) Target() *big.Int {
	if c.targetAmount == nil {
		return nil
	}
	return new(big.Int).Set(c.targetAmount)
}

// AssetAddress returns the asset the campaign accepts
func (c CampaignConfig) AssetAddress() common.Address {
	return common.HexToAddress(c.Asset)
}

// TokenConfig contains display settings for the deposit token
type TokenConfig struct {
	Decimals int32 `mapstructure:"decimals" yaml:"decimals" default:"18" validate:"gte=0,lte=77"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" default:"info"`
	Format     string `mapstructure:"format" yaml:"format" default:"console" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path" default:"stderr"`
}

// MonitoringConfig contains metrics settings
type MonitoringConfig struct {
	// TextfilePath enables writing run metrics in the Prometheus text format.
	TextfilePath string `mapstructure:"textfile_path" yaml:"textfile_path"`
}

// keys recognised in the config file and the environment
var keys = []string{
	"ethereum.rpc_url",
	"ethereum.private_key",
	"ethereum.chain_id",
	"ethereum.gas_limit",
	"ethereum.max_gas_price",
	"contracts.factory_address",
	"contracts.deposit_token_address",
	"contracts.campaign_address",
	"donation.amount",
	"approval.mint",
	"campaign.create",
	"campaign.target_amount",
	"campaign.asset",
	"campaign.title",
	"token.decimals",
	"logging.level",
	"logging.format",
	"logging.output_path",
	"monitoring.textfile_path",
}

// LoadEnvFile loads a dotenv file into the process environment without
// overriding variables that are already set. An empty path loads ./.env if it exists.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return apperrors.ConfigurationError(err, fmt.Sprintf("failed to load env file %s", path))
	}
	return nil
}

// Load loads configuration from an optional file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, apperrors.GeneralError(err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.ConfigurationError(err, "failed to read config file")
		}
	}

	var config Config
	if err := defaults.Set(&config); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to set defaults: %w", err))
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to unmarshal config")
	}

	if config.Campaign.Asset == "" {
		config.Campaign.Asset = config.Contracts.DepositTokenAddress
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})

	if err := v.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return apperrors.ConfigurationError(err, "config validation failed")
		}
		return fieldError(fieldErrs[0])
	}

	if strings.TrimSpace(config.Ethereum.MaxGasPrice) != "" {
		maxGasPrice, err := ParseAmount(config.Ethereum.MaxGasPrice)
		if err != nil {
			return apperrors.ConfigurationError(err, "ethereum.max_gas_price is invalid")
		}
		config.Ethereum.maxGasPrice = maxGasPrice
	}

	amount, err := ParseAmount(config.Donation.Amount)
	if err != nil {
		return apperrors.ConfigurationError(err, "donation.amount is invalid")
	}
	if amount.Sign() == 0 {
		return apperrors.ConfigurationError(nil, "donation.amount must be greater than zero")
	}
	config.Donation.amount = amount

	target, err := ParseAmount(config.Campaign.TargetAmount)
	if err != nil {
		return apperrors.ConfigurationError(err, "campaign.target_amount is invalid")
	}
	config.Campaign.targetAmount = target

	return nil
}

func fieldError(fe validator.FieldError) error {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return apperrors.ConfigurationError(nil, fmt.Sprintf("%s is required", key))
	case "eth_addr":
		return apperrors.AddressParseError(
			fmt.Errorf("%q is not a hex address", fe.Value()),
			fmt.Sprintf("%s is invalid", key))
	default:
		return apperrors.ConfigurationError(
			fmt.Errorf("failed on %q validation", fe.Tag()),
			fmt.Sprintf("%s is invalid", key))
	}
}

// ParseAmount parses a base-10 unsigned 256-bit integer.
func ParseAmount(s string) (*big.Int, error) {
	n, err := uint256.FromDecimal(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%q is not an unsigned 256-bit integer: %w", s, err)
	}
	return n.ToBig(), nil
}

// Redacted returns a copy of the config safe to print
func (c Config) Redacted() Config {
	if c.Ethereum.PrivateKey != "" {
		c.Ethereum.PrivateKey = redacted
	}
	return c
}
