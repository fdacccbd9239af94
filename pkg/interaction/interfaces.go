package interaction

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/campaign-client/pkg/ethereum/contracts"
)

// Chain is the signer and connection used to submit transactions
type Chain interface {
	Address() common.Address
	CallOpts(ctx context.Context) *bind.CallOpts
	GetTransactor(ctx context.Context) (*bind.TransactOpts, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// Token is the deposit token surface used by the approval and status steps
type Token interface {
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	Allowance(opts *bind.CallOpts, owner common.Address, spender common.Address) (*big.Int, error)
	Decimals(opts *bind.CallOpts) (uint8, error)
	Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error)
	Approve(opts *bind.TransactOpts, spender common.Address, value *big.Int) (*types.Transaction, error)
}

// Factory is the campaign factory surface
type Factory interface {
	AcceptedTokenAddresses(opts *bind.CallOpts) ([]common.Address, error)
	CreateCampaign(
		opts *bind.TransactOpts,
		params contracts.CampaignFactoryCreateCampaignParams,
	) (*types.Transaction, error)
	ParseCampaignCreated(log types.Log) (*contracts.CampaignFactoryCampaignCreated, error)
}

// Campaign is the campaign surface used for donations and metadata reads
type Campaign interface {
	Donate(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error)
	Metadata(opts *bind.CallOpts) ([]byte, error)
}

// Binder binds contract handles at an address
type Binder interface {
	Token(address common.Address) (Token, error)
	Factory(address common.Address) (Factory, error)
	Campaign(address common.Address) (Campaign, error)
}
