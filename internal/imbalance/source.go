package imbalance

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"spreadScope/internal/chain"
)

// SourceConfig holds runtime settings for the on-chain imbalance source.
type SourceConfig struct {
	Pool         common.Address
	Token0       common.Address
	Token1       common.Address
	Decimals0    int // -1 means fetch from the token contract
	Decimals1    int
	BlockNumber  uint64 // 0 means latest
	MaxRetries   int
	RetryBackoff time.Duration
}

// Observation is one snapshot of a pool's token inventories with the
// derived imbalance ratio.
type Observation struct {
	Balance0  *big.Int
	Balance1  *big.Int
	Decimals0 uint8
	Decimals1 uint8
	Imbalance float64
}

// Source reads a pool's token balances from chain and derives the
// imbalance ratio fed into the adjustment calculator.
type Source struct {
	cfg    SourceConfig
	chain  *chain.Client
	logger *zap.Logger
}

// NewSource builds a Source with its dependencies.
func NewSource(cfg SourceConfig, chainClient *chain.Client, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{cfg: cfg, chain: chainClient, logger: logger}
}

// Read fetches both balances (and decimals when not configured) and
// returns the observation.
func (s *Source) Read(ctx context.Context) (Observation, error) {
	if s.chain == nil {
		return Observation{}, fmt.Errorf("chain client is nil")
	}

	var blockPtr *big.Int
	if s.cfg.BlockNumber > 0 {
		blockPtr = new(big.Int).SetUint64(s.cfg.BlockNumber)
	}

	dec0, err := s.resolveDecimals(ctx, s.cfg.Token0, s.cfg.Decimals0)
	if err != nil {
		return Observation{}, fmt.Errorf("token0 decimals: %w", err)
	}
	dec1, err := s.resolveDecimals(ctx, s.cfg.Token1, s.cfg.Decimals1)
	if err != nil {
		return Observation{}, fmt.Errorf("token1 decimals: %w", err)
	}

	bal0, err := s.balanceOfWithRetry(ctx, s.cfg.Token0, blockPtr)
	if err != nil {
		return Observation{}, fmt.Errorf("token0 balance: %w", err)
	}
	bal1, err := s.balanceOfWithRetry(ctx, s.cfg.Token1, blockPtr)
	if err != nil {
		return Observation{}, fmt.Errorf("token1 balance: %w", err)
	}

	ratio, err := Ratio(bal0, bal1, dec0, dec1)
	if err != nil {
		return Observation{}, err
	}

	return Observation{
		Balance0:  bal0,
		Balance1:  bal1,
		Decimals0: dec0,
		Decimals1: dec1,
		Imbalance: ratio,
	}, nil
}

func (s *Source) resolveDecimals(ctx context.Context, token common.Address, configured int) (uint8, error) {
	if configured >= 0 {
		if configured > 255 {
			return 0, fmt.Errorf("decimals out of range: %d", configured)
		}
		return uint8(configured), nil
	}

	var decimals uint8
	err := withRetry(ctx, s.cfg.MaxRetries, s.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		decimals, err = s.fetchDecimals(ctx, token)
		if err != nil {
			s.logger.Warn("decimals fetch failed", zap.String("token", token.Hex()), zap.Error(err))
		}
		return err
	})
	return decimals, err
}

func (s *Source) balanceOfWithRetry(ctx context.Context, token common.Address, block *big.Int) (*big.Int, error) {
	var balance *big.Int
	err := withRetry(ctx, s.cfg.MaxRetries, s.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		balance, err = s.balanceOf(ctx, token, block)
		if err != nil {
			s.logger.Warn("balanceOf failed", zap.String("token", token.Hex()), zap.Error(err))
		}
		return err
	})
	return balance, err
}

func (s *Source) balanceOf(ctx context.Context, token common.Address, block *big.Int) (*big.Int, error) {
	tokenABI, err := erc20ABIInstance()
	if err != nil {
		return nil, err
	}

	data, err := tokenABI.Pack("balanceOf", s.cfg.Pool)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}

	msg := ethereum.CallMsg{To: &token, Data: data}
	resp, err := s.chain.CallContract(ctx, msg, block)
	if err != nil {
		return nil, fmt.Errorf("call balanceOf: %w", err)
	}

	values, err := tokenABI.Unpack("balanceOf", resp)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("balanceOf return size %d", len(values))
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("balanceOf unexpected type %T", values[0])
	}
	return balance, nil
}

func (s *Source) fetchDecimals(ctx context.Context, token common.Address) (uint8, error) {
	tokenABI, err := erc20ABIInstance()
	if err != nil {
		return 0, err
	}

	data, err := tokenABI.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("pack decimals: %w", err)
	}

	msg := ethereum.CallMsg{To: &token, Data: data}
	resp, err := s.chain.CallContract(ctx, msg, nil)
	if err != nil {
		return 0, fmt.Errorf("call decimals: %w", err)
	}

	values, err := tokenABI.Unpack("decimals", resp)
	if err != nil {
		return 0, fmt.Errorf("unpack decimals: %w", err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("decimals return size %d", len(values))
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals unexpected type %T", values[0])
	}
	return decimals, nil
}
