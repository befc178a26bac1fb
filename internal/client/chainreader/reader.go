package chainreader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"token_analyzer/internal/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// BEP-20 function selectors.
var (
	selectorName     = hexutil.MustDecode("0x06fdde03")
	selectorSymbol   = hexutil.MustDecode("0x95d89b41")
	selectorDecimals = hexutil.MustDecode("0x313ce567")
	selectorOwner    = hexutil.MustDecode("0x8da5cb5b")
)

// deadAddress is the conventional burn target used in place of renouncing.
const deadAddress = "0x000000000000000000000000000000000000dead"

// TokenReader resolves BEP-20 identity fields over JSON-RPC.
type TokenReader interface {
	ReadIdentity(ctx context.Context, tokenAddress string) entity.TokenIdentity
}

// tokenReaderImpl is the implementation of TokenReader.
type tokenReaderImpl struct {
	rpcClient *rpc.Client
	timeout   time.Duration
	logger    *zap.Logger
}

// NewTokenReader dials the RPC endpoint and returns a reader bound to it.
func NewTokenReader(rpcURL string, connectTimeout, callTimeout time.Duration, logger *zap.Logger) (TokenReader, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	return &tokenReaderImpl{
		rpcClient: client,
		timeout:   callTimeout,
		logger:    logger.Named("TokenReader"),
	}, nil
}

// ReadIdentity implements the TokenReader interface. All four calls go out as
// one JSON-RPC batch; each field falls back independently so a contract
// missing owner() or name() still resolves the rest.
func (r *tokenReaderImpl) ReadIdentity(ctx context.Context, tokenAddress string) entity.TokenIdentity {
	identity := entity.TokenIdentity{
		Name:             "Unknown Token",
		Symbol:           "UNKNOWN",
		Decimals:         18,
		IsOwnerRenounced: false,
	}

	to := common.HexToAddress(tokenAddress)
	selectors := [][]byte{selectorName, selectorSymbol, selectorDecimals, selectorOwner}
	batch := make([]rpc.BatchElem, len(selectors))
	for i, selector := range selectors {
		batch[i] = rpc.BatchElem{
			Method: "eth_call",
			Args: []interface{}{
				map[string]interface{}{
					"to":   to,
					"data": hexutil.Bytes(selector),
				},
				"latest",
			},
			Result: new(hexutil.Bytes),
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.rpcClient.BatchCallContext(callCtx, batch); err != nil {
		r.logger.Warn("Identity batch call failed, using fallback identity",
			zap.String("tokenAddress", tokenAddress), zap.Error(err))
		return identity
	}

	if data, ok := batchResult(batch[0]); ok {
		if name := DecodeContractString(data); name != "" {
			identity.Name = name
		}
	}
	if data, ok := batchResult(batch[1]); ok {
		if symbol := DecodeContractString(data); symbol != "" {
			identity.Symbol = symbol
		}
	}
	if data, ok := batchResult(batch[2]); ok && len(data) > 0 {
		// Zero reads as absent; every real BEP-20 has at least 1 decimal.
		if decimals := int(data[len(data)-1]); decimals > 0 {
			identity.Decimals = decimals
		}
	}
	if data, ok := batchResult(batch[3]); ok && len(data) == 32 {
		owner := common.BytesToAddress(data[12:]).Hex()
		identity.OwnerAddress = owner
		identity.IsOwnerRenounced = IsRenouncedOwner(owner)
	}

	return identity
}

func batchResult(elem rpc.BatchElem) ([]byte, bool) {
	if elem.Error != nil {
		return nil, false
	}
	result, ok := elem.Result.(*hexutil.Bytes)
	if !ok || result == nil || len(*result) == 0 {
		return nil, false
	}
	return *result, true
}

// DecodeContractString extracts the printable-ASCII payload of an ABI-encoded
// string return value. The offset and length words are skipped rather than
// trusted, which also tolerates the bytes32-style name() some old contracts
// use. Returns "" when nothing printable is found.
func DecodeContractString(data []byte) string {
	const dataStart = 64 // offset word + length word
	if len(data) <= dataStart {
		return ""
	}

	var sb strings.Builder
	for _, b := range data[dataStart:] {
		if b == 0 {
			break
		}
		if b >= 32 && b <= 126 {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// IsRenouncedOwner reports whether the decoded owner address means nobody
// controls the contract anymore.
func IsRenouncedOwner(owner string) bool {
	lower := strings.ToLower(owner)
	return lower == strings.ToLower(common.Address{}.Hex()) || lower == deadAddress
}
