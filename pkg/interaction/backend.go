package interaction

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/campaign-client/pkg/ethereum/contracts"
)

// Bindings binds the generated contract bindings to an RPC backend
type Bindings struct {
	backend bind.ContractBackend
}

// NewBindings creates a Binder over the given backend
func NewBindings(backend bind.ContractBackend) *Bindings {
	return &Bindings{backend: backend}
}

// Token binds the deposit token at address
func (b *Bindings) Token(address common.Address) (Token, error) {
	token, err := contracts.NewDepositToken(address, b.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind deposit token %s: %w", address.Hex(), err)
	}
	return token, nil
}

// Factory binds the campaign factory at address
func (b *Bindings) Factory(address common.Address) (Factory, error) {
	factory, err := contracts.NewCampaignFactory(address, b.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind campaign factory %s: %w", address.Hex(), err)
	}
	return factory, nil
}

// Campaign binds the campaign at address
func (b *Bindings) Campaign(address common.Address) (Campaign, error) {
	campaign, err := contracts.NewCampaign(address, b.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind campaign %s: %w", address.Hex(), err)
	}
	return campaign, nil
}
