package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/campaign-client/internal/metrics"
	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
	"github.com/chainsafe/campaign-client/pkg/config"
	"github.com/chainsafe/campaign-client/pkg/metadata"
)

// Steps, used as log and metric labels
const (
	StepMint     = "mint"
	StepApprove  = "approve"
	StepCreate   = "create_campaign"
	StepDonate   = "donate"
	StepDescribe = "describe"
	StepStatus   = "status"
)

// Settings holds the values the client needs beyond the per-call arguments.
// When Mint is set the approved amount is minted to the signer before approving.
type Settings struct {
	DepositToken common.Address
	Mint         bool
	TargetAmount *big.Int
	Asset        common.Address
	Title        string
	Decimals     int32
}

// SettingsFromConfig extracts client settings from a loaded config
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		DepositToken: cfg.Contracts.DepositToken(),
		Mint:         cfg.Approval.Mint,
		TargetAmount: cfg.Campaign.Target(),
		Asset:        cfg.Campaign.AssetAddress(),
		Title:        cfg.Campaign.Title,
		Decimals:     cfg.Token.Decimals,
	}
}

// Client drives the contract interactions. Every transaction is waited for
// and its receipt written to out.
type Client struct {
	chain    Chain
	binder   Binder
	settings Settings
	out      io.Writer
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewClient creates a new interaction client
func NewClient(
	chain Chain,
	binder Binder,
	settings Settings,
	out io.Writer,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Client {
	if m == nil {
		m = metrics.New()
	}
	return &Client{
		chain:    chain,
		binder:   binder,
		settings: settings,
		out:      out,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Approve grants spender an allowance of amount on the deposit token,
// minting the same amount to the signer first when minting is enabled.
func (c *Client) Approve(ctx context.Context, spender common.Address, amount *big.Int) error {
	token, err := c.binder.Token(c.settings.DepositToken)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	if c.settings.Mint {
		signer := c.chain.Address()
		c.logger.Info("Minting deposit tokens",
			zap.String("token", c.settings.DepositToken.Hex()),
			zap.String("to", signer.Hex()),
			zap.String("amount", c.displayAmount(amount)))

		if _, err := c.send(ctx, StepMint, func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return token.Mint(opts, signer, amount)
		}); err != nil {
			return err
		}
	}

	c.logger.Info("Approving allowance",
		zap.String("token", c.settings.DepositToken.Hex()),
		zap.String("spender", spender.Hex()),
		zap.String("amount", c.displayAmount(amount)))

	_, err = c.send(ctx, StepApprove, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return token.Approve(opts, spender, amount)
	})
	return err
}

// CreateCampaign creates a campaign through the factory and returns its address.
// The zero address is returned when the receipt carries no CampaignCreated event.
func (c *Client) CreateCampaign(ctx context.Context, factoryAddress common.Address) (common.Address, error) {
	factory, err := c.binder.Factory(factoryAddress)
	if err != nil {
		return common.Address{}, apperrors.GeneralError(err)
	}

	accepted, err := factory.AcceptedTokenAddresses(c.chain.CallOpts(ctx))
	if err != nil {
		return common.Address{}, apperrors.NetworkError(err, "failed to query accepted tokens")
	}
	c.logger.Info("Accepted token addresses", zap.Stringers("tokens", accepted))

	if !containsAddress(accepted, c.settings.Asset) {
		c.logger.Warn("Campaign asset is not an accepted token",
			zap.String("asset", c.settings.Asset.Hex()))
	}

	var md []byte
	if c.settings.Title != "" {
		md, err = metadata.Metadata{Title: c.settings.Title}.Bytes()
		if err != nil {
			return common.Address{}, apperrors.GeneralError(err)
		}
	}

	params := BuildParams(c.now(), c.chain.Address(), c.settings.Asset, c.settings.TargetAmount, md)
	if err := ValidateParams(params); err != nil {
		c.metrics.ErrorsTotal.WithLabelValues(StepCreate, apperrors.CategoryValidation.String()).Inc()
		return common.Address{}, apperrors.ValidationError(err, "invalid campaign parameters")
	}

	c.logger.Info("Creating campaign",
		zap.String("factory", factoryAddress.Hex()),
		zap.Uint64("start_time", params.StartTime),
		zap.Uint64("end_time", params.EndTime),
		zap.String("target_amount", c.displayAmount(params.TargetAmount)),
		zap.String("asset", params.Asset.Hex()))

	receipt, err := c.send(ctx, StepCreate, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return factory.CreateCampaign(opts, params)
	})
	if err != nil {
		return common.Address{}, err
	}

	for _, log := range receipt.Logs {
		if log == nil || log.Address != factoryAddress {
			continue
		}
		event, err := factory.ParseCampaignCreated(*log)
		if err != nil {
			continue
		}
		c.metrics.CampaignsCreated.Inc()
		c.logger.Info("Campaign created",
			zap.String("campaign", event.Campaign.Hex()),
			zap.String("beneficiary", event.Beneficiary.Hex()))
		return event.Campaign, nil
	}

	c.logger.Warn("No CampaignCreated event in receipt", zap.String("tx_hash", receipt.TxHash.Hex()))
	return common.Address{}, nil
}

// Donate donates amount of the campaign asset from the signer
func (c *Client) Donate(ctx context.Context, campaignAddress common.Address, amount *big.Int) error {
	campaign, err := c.binder.Campaign(campaignAddress)
	if err != nil {
		return apperrors.GeneralError(err)
	}

	c.logger.Info("Donating to campaign",
		zap.String("campaign", campaignAddress.Hex()),
		zap.String("amount", c.displayAmount(amount)))

	_, err = c.send(ctx, StepDonate, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return campaign.Donate(opts, amount)
	})
	return err
}

// Describe reads and decodes the campaign's on-chain metadata
func (c *Client) Describe(ctx context.Context, campaignAddress common.Address) (*metadata.Metadata, error) {
	campaign, err := c.binder.Campaign(campaignAddress)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	raw, err := campaign.Metadata(c.chain.CallOpts(ctx))
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to read campaign metadata")
	}

	md, err := metadata.Parse(raw)
	if err != nil {
		c.metrics.ErrorsTotal.WithLabelValues(StepDescribe, apperrors.CategoryGeneralError.String()).Inc()
		return nil, fmt.Errorf("failed to decode metadata of campaign %s: %w", campaignAddress.Hex(), err)
	}
	return md, nil
}

// TokenStatus is the signer's deposit token position towards a spender
type TokenStatus struct {
	Owner     common.Address
	Spender   common.Address
	Balance   *big.Int
	Allowance *big.Int
	Decimals  uint8
}

// Describe renders the balance and allowance in whole tokens
func (s TokenStatus) Describe() string {
	exp := -int32(s.Decimals)
	return fmt.Sprintf("Balance: %s\nAllowance: %s\n",
		decimal.NewFromBigInt(s.Balance, exp).String(),
		decimal.NewFromBigInt(s.Allowance, exp).String())
}

// Status reads the signer's deposit token balance and its allowance for spender
func (c *Client) Status(ctx context.Context, spender common.Address) (*TokenStatus, error) {
	token, err := c.binder.Token(c.settings.DepositToken)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	owner := c.chain.Address()
	opts := c.chain.CallOpts(ctx)

	balance, err := token.BalanceOf(opts, owner)
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to read token balance")
	}
	allowance, err := token.Allowance(opts, owner, spender)
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to read token allowance")
	}
	decimals, err := token.Decimals(opts)
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to read token decimals")
	}

	c.logger.Info("Token status",
		zap.String("owner", owner.Hex()),
		zap.String("spender", spender.Hex()),
		zap.String("balance", balance.String()),
		zap.String("allowance", allowance.String()))

	return &TokenStatus{
		Owner:     owner,
		Spender:   spender,
		Balance:   balance,
		Allowance: allowance,
		Decimals:  decimals,
	}, nil
}

// send submits one transaction, waits for it to be mined and prints the receipt
func (c *Client) send(
	ctx context.Context,
	step string,
	submit func(opts *bind.TransactOpts) (*types.Transaction, error),
) (*types.Receipt, error) {
	receipt, err := c.submitAndWait(ctx, step, submit)
	if err != nil {
		c.metrics.ErrorsTotal.WithLabelValues(step, apperrors.CategoryOf(err).String()).Inc()
		c.logger.Error("Transaction failed", zap.String("step", step), zap.Error(err))
	}
	return receipt, err
}

func (c *Client) submitAndWait(
	ctx context.Context,
	step string,
	submit func(opts *bind.TransactOpts) (*types.Transaction, error),
) (*types.Receipt, error) {
	auth, err := c.chain.GetTransactor(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := submit(auth)
	if err != nil {
		c.metrics.TransactionsSent.WithLabelValues(step, metrics.StatusFailed).Inc()
		return nil, apperrors.NetworkError(err, fmt.Sprintf("failed to submit %s transaction", step))
	}

	c.logger.Info("Transaction submitted",
		zap.String("step", step),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))

	started := time.Now()
	receipt, err := c.chain.WaitMined(ctx, tx)
	if err != nil {
		c.metrics.TransactionsSent.WithLabelValues(step, metrics.StatusFailed).Inc()
		return nil, err
	}
	c.metrics.StepDuration.WithLabelValues(step).Observe(time.Since(started).Seconds())
	c.metrics.GasUsed.WithLabelValues(step).Observe(float64(receipt.GasUsed))

	if err := c.printReceipt(receipt); err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		c.metrics.TransactionsSent.WithLabelValues(step, metrics.StatusReverted).Inc()
		return nil, apperrors.NetworkError(
			fmt.Errorf("transaction %s reverted", receipt.TxHash.Hex()),
			fmt.Sprintf("%s transaction failed", step))
	}
	c.metrics.TransactionsSent.WithLabelValues(step, metrics.StatusSuccess).Inc()

	c.logger.Info("Transaction mined",
		zap.String("step", step),
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("gas_used", receipt.GasUsed),
		zap.Stringer("block", receipt.BlockNumber))

	return receipt, nil
}

func (c *Client) printReceipt(receipt *types.Receipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return apperrors.GeneralError(fmt.Errorf("failed to encode receipt: %w", err))
	}
	if _, err := fmt.Fprintf(c.out, "Transaction Receipt: %s\n", data); err != nil {
		return apperrors.GeneralError(fmt.Errorf("failed to print receipt: %w", err))
	}
	return nil
}

// displayAmount renders a base-unit amount in whole tokens for logs
func (c *Client) displayAmount(amount *big.Int) string {
	if amount == nil {
		return "<nil>"
	}
	return decimal.NewFromBigInt(amount, -c.settings.Decimals).String()
}

func containsAddress(list []common.Address, addr common.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}
