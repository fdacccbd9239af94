package main

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/campaign-client/pkg/config"
)

// operations is the subset of the interaction client the driver sequences
type operations interface {
	Approve(ctx context.Context, spender common.Address, amount *big.Int) error
	CreateCampaign(ctx context.Context, factory common.Address) (common.Address, error)
	Donate(ctx context.Context, campaign common.Address, amount *big.Int) error
}

// plan is the fixed run: approve, optionally create a campaign, donate
type plan struct {
	Factory  common.Address
	Campaign common.Address
	Amount   *big.Int
	Create   bool
}

func planFromConfig(cfg *config.Config) plan {
	return plan{
		Factory:  cfg.Contracts.Factory(),
		Campaign: cfg.Contracts.Campaign(),
		Amount:   cfg.Donation.Value(),
		Create:   cfg.Campaign.Create,
	}
}

// runSequence executes the steps in order and stops at the first failure
func runSequence(ctx context.Context, ops operations, p plan, logger *zap.Logger) error {
	logger.Info("Approving campaign spend", zap.String("campaign", p.Campaign.Hex()))
	if err := ops.Approve(ctx, p.Campaign, p.Amount); err != nil {
		return err
	}

	if p.Create {
		created, err := ops.CreateCampaign(ctx, p.Factory)
		if err != nil {
			return err
		}
		logger.Info("Created campaign", zap.String("campaign", created.Hex()))
	}

	if err := ops.Donate(ctx, p.Campaign, p.Amount); err != nil {
		return err
	}

	logger.Info("Run completed", zap.String("campaign", p.Campaign.Hex()))
	return nil
}
