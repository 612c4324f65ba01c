package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Mezo Testnet", cfg.Network.Name)
	assert.Equal(t, 31611, cfg.Network.ChainId)
	assert.Equal(t, "https://testnet-rpc.mezo.org", cfg.Network.Rpc)

	assert.Equal(t, "0xC2c7c8E1325Ec049302F225c8A0151E561F446Ed", cfg.IndividualPool().Address.Hex())
	assert.Equal(t, "0xDDe8c75271E454075BD2f348213A66B142BB8906", cfg.CooperativePool().Address.Hex())
	assert.Equal(t, "0xfB3265402f388d72a9b63353b4a7BeeC4fD9De4c", cfg.YieldAggregator().Address.Hex())
	assert.Equal(t, "0x9AC6249d2f2E3cbAAF34E114EdF1Cb7519AF04C2", cfg.MezoIntegration().Address.Hex())

	assert.Equal(t, "IndividualPool", cfg.IndividualPool().Name)
	assert.Equal(t, "YieldAggregator(0xfB3265402f388d72a9b63353b4a7BeeC4fD9De4c)", cfg.YieldAggregator().String())
}

func TestParseConfig(t *testing.T) {
	valid := `
network:
  name: Local
  chainid: 1337
  rpc: http://127.0.0.1:8545
contracts:
  individual_pool: "0x0000000000000000000000000000000000000001"
  cooperative_pool: "0x0000000000000000000000000000000000000002"
  yield_aggregator: "0x0000000000000000000000000000000000000003"
  mezo_integration: "0x0000000000000000000000000000000000000004"
`
	cfg, err := ParseConfig([]byte(valid))
	require.NoError(t, err)
	assert.Equal(t, 1337, cfg.Network.ChainId)
	assert.Equal(t, "0x0000000000000000000000000000000000000003", cfg.YieldAggregator().Address.Hex())

	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "malformed yaml",
			data:   "network: [",
			errMsg: "parse network config",
		},
		{
			name: "missing rpc",
			data: `
network:
  chainid: 1
contracts:
  individual_pool: "0x0000000000000000000000000000000000000001"
  cooperative_pool: "0x0000000000000000000000000000000000000002"
  yield_aggregator: "0x0000000000000000000000000000000000000003"
  mezo_integration: "0x0000000000000000000000000000000000000004"
`,
			errMsg: "network rpc is empty",
		},
		{
			name: "bad address",
			data: `
network:
  rpc: http://127.0.0.1:8545
contracts:
  individual_pool: "0x0000000000000000000000000000000000000001"
  cooperative_pool: "0x0000000000000000000000000000000000000002"
  yield_aggregator: "not-an-address"
  mezo_integration: "0x0000000000000000000000000000000000000004"
`,
			errMsg: `invalid yield_aggregator address "not-an-address"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
