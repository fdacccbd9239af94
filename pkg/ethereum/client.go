package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
	"github.com/chainsafe/campaign-client/pkg/config"
)

// Backend is the node connection a Client signs and submits through
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client couples a node connection with the signing key used for every transaction
type Client struct {
	config     *config.EthereumConfig
	client     Backend
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    *big.Int
	logger     *zap.Logger
}

// NewClient connects to the configured RPC endpoint and loads the signing key
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	if _, err := ParsePrivateKey(cfg.PrivateKey); err != nil {
		return nil, err
	}

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to connect to Ethereum RPC")
	}

	c, err := NewClientWithBackend(ctx, cfg, client, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	return c, nil
}

// NewClientWithBackend builds a Client on an existing connection.
// The chain id is queried from the backend when cfg.ChainID is zero.
func NewClientWithBackend(ctx context.Context, cfg *config.EthereumConfig, backend Backend, logger *zap.Logger) (*Client, error) {
	privateKey, err := ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = backend.ChainID(ctx)
		if err != nil {
			return nil, apperrors.NetworkError(err, "failed to get chain id")
		}
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	logger.Info("Connected to Ethereum",
		zap.String("chain_id", chainID.String()),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("signer", address.Hex()))

	return &Client{
		config:     cfg,
		client:     backend,
		privateKey: privateKey,
		address:    address,
		chainID:    chainID,
		logger:     logger,
	}, nil
}

// ParsePrivateKey parses a hex-encoded secp256k1 key, with or without a 0x prefix
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key := strings.TrimSpace(hexKey)
	key = strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")

	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, apperrors.SigningError(err, "failed to load private key")
	}
	return privateKey, nil
}

// Close closes the RPC connection when the backend owns one
func (c *Client) Close() {
	if closer, ok := c.client.(interface{ Close() }); ok {
		closer.Close()
	}
}

// Address returns the signer address
func (c *Client) Address() common.Address {
	return c.address
}

// ChainID returns the chain id transactions are signed for
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Backend returns the connection for use by contract bindings
func (c *Client) Backend() bind.ContractBackend {
	return c.client
}

// CallOpts returns options for read-only contract calls
func (c *Client) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{From: c.address, Context: ctx}
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, apperrors.SigningError(err, "failed to create transactor")
	}

	// Get nonce
	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, apperrors.NetworkError(err, "failed to get nonce")
	}

	auth.Context = ctx
	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.config.GasLimit

	// Cap the gas price if configured
	maxGasPrice, err := c.config.GasPriceCap()
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "ethereum.max_gas_price is invalid")
	}
	if maxGasPrice != nil {
		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, apperrors.NetworkError(err, "failed to suggest gas price")
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// WaitMined blocks until the transaction is mined and returns its receipt
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, apperrors.NetworkError(err, fmt.Sprintf("failed waiting for transaction %s", tx.Hash().Hex()))
	}
	return receipt, nil
}
