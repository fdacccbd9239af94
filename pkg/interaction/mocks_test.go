package interaction

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/campaign-client/pkg/ethereum/contracts"
)

// MockChain is a mock implementation of Chain
type MockChain struct {
	Signer            common.Address
	GetTransactorFunc func(ctx context.Context) (*bind.TransactOpts, error)
	WaitMinedFunc     func(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	nonce uint64
}

func (m *MockChain) Address() common.Address {
	return m.Signer
}

func (m *MockChain) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{From: m.Signer, Context: ctx}
}

func (m *MockChain) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	if m.GetTransactorFunc != nil {
		return m.GetTransactorFunc(ctx)
	}
	opts := &bind.TransactOpts{From: m.Signer, Nonce: new(big.Int).SetUint64(m.nonce), Context: ctx}
	m.nonce++
	return opts, nil
}

// WaitMined returns a successful receipt unless WaitMinedFunc is set
func (m *MockChain) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if m.WaitMinedFunc != nil {
		return m.WaitMinedFunc(ctx, tx)
	}
	return successReceipt(tx), nil
}

// MockToken is a mock implementation of Token
type MockToken struct {
	BalanceOfFunc func(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	AllowanceFunc func(opts *bind.CallOpts, owner common.Address, spender common.Address) (*big.Int, error)
	DecimalsFunc  func(opts *bind.CallOpts) (uint8, error)
	MintFunc      func(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error)
	ApproveFunc   func(opts *bind.TransactOpts, spender common.Address, value *big.Int) (*types.Transaction, error)
}

func (m *MockToken) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	if m.BalanceOfFunc != nil {
		return m.BalanceOfFunc(opts, account)
	}
	return new(big.Int), nil
}

func (m *MockToken) Allowance(opts *bind.CallOpts, owner common.Address, spender common.Address) (*big.Int, error) {
	if m.AllowanceFunc != nil {
		return m.AllowanceFunc(opts, owner, spender)
	}
	return new(big.Int), nil
}

func (m *MockToken) Decimals(opts *bind.CallOpts) (uint8, error) {
	if m.DecimalsFunc != nil {
		return m.DecimalsFunc(opts)
	}
	return 18, nil
}

func (m *MockToken) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	if m.MintFunc != nil {
		return m.MintFunc(opts, to, amount)
	}
	return newTx(opts), nil
}

func (m *MockToken) Approve(opts *bind.TransactOpts, spender common.Address, value *big.Int) (*types.Transaction, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(opts, spender, value)
	}
	return newTx(opts), nil
}

// MockFactory is a mock implementation of Factory.
// ParseCampaignCreated uses the generated filterer unless overridden.
type MockFactory struct {
	AcceptedTokenAddressesFunc func(opts *bind.CallOpts) ([]common.Address, error)
	CreateCampaignFunc         func(
		opts *bind.TransactOpts,
		params contracts.CampaignFactoryCreateCampaignParams,
	) (*types.Transaction, error)
	ParseCampaignCreatedFunc func(log types.Log) (*contracts.CampaignFactoryCampaignCreated, error)
}

func (m *MockFactory) AcceptedTokenAddresses(opts *bind.CallOpts) ([]common.Address, error) {
	if m.AcceptedTokenAddressesFunc != nil {
		return m.AcceptedTokenAddressesFunc(opts)
	}
	return nil, nil
}

func (m *MockFactory) CreateCampaign(
	opts *bind.TransactOpts,
	params contracts.CampaignFactoryCreateCampaignParams,
) (*types.Transaction, error) {
	if m.CreateCampaignFunc != nil {
		return m.CreateCampaignFunc(opts, params)
	}
	return newTx(opts), nil
}

func (m *MockFactory) ParseCampaignCreated(log types.Log) (*contracts.CampaignFactoryCampaignCreated, error) {
	if m.ParseCampaignCreatedFunc != nil {
		return m.ParseCampaignCreatedFunc(log)
	}
	filterer, err := contracts.NewCampaignFactoryFilterer(log.Address, nil)
	if err != nil {
		return nil, err
	}
	return filterer.ParseCampaignCreated(log)
}

// MockCampaign is a mock implementation of Campaign
type MockCampaign struct {
	DonateFunc   func(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error)
	MetadataFunc func(opts *bind.CallOpts) ([]byte, error)
}

func (m *MockCampaign) Donate(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	if m.DonateFunc != nil {
		return m.DonateFunc(opts, amount)
	}
	return newTx(opts), nil
}

func (m *MockCampaign) Metadata(opts *bind.CallOpts) ([]byte, error) {
	if m.MetadataFunc != nil {
		return m.MetadataFunc(opts)
	}
	return nil, nil
}

// MockBinder hands out the configured mocks and records the bound addresses
type MockBinder struct {
	TokenMock    *MockToken
	FactoryMock  *MockFactory
	CampaignMock *MockCampaign

	Bound []common.Address
}

func (m *MockBinder) Token(address common.Address) (Token, error) {
	m.Bound = append(m.Bound, address)
	return m.TokenMock, nil
}

func (m *MockBinder) Factory(address common.Address) (Factory, error) {
	m.Bound = append(m.Bound, address)
	return m.FactoryMock, nil
}

func (m *MockBinder) Campaign(address common.Address) (Campaign, error) {
	m.Bound = append(m.Bound, address)
	return m.CampaignMock, nil
}

func newTx(opts *bind.TransactOpts) *types.Transaction {
	var nonce uint64
	if opts != nil && opts.Nonce != nil {
		nonce = opts.Nonce.Uint64()
	}
	return types.NewTx(&types.LegacyTx{Nonce: nonce, Gas: 21000, GasPrice: big.NewInt(1)})
}

func successReceipt(tx *types.Transaction) *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		GasUsed:     50000,
		BlockNumber: big.NewInt(1),
		Logs:        []*types.Log{},
	}
}
