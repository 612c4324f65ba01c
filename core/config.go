package core

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var networksYaml []byte

var defaultConfig Config

func init() {
	cfg, err := ParseConfig(networksYaml)
	if err != nil {
		panic(err)
	}
	defaultConfig = cfg
}

type Config struct {
	Network   Network   `yaml:"network"`
	Contracts Contracts `yaml:"contracts"`
}

type Network struct {
	Name    string `yaml:"name"`
	ChainId int    `yaml:"chainid"`
	Rpc     string `yaml:"rpc"`
}

// Contracts 部署在测试网上的合约地址
// MezoIntegration 只是登记，不参与任何检查
type Contracts struct {
	IndividualPool  string `yaml:"individual_pool"`
	CooperativePool string `yaml:"cooperative_pool"`
	YieldAggregator string `yaml:"yield_aggregator"`
	MezoIntegration string `yaml:"mezo_integration"`
}

// ContractRef 合约地址 + 展示用名称
type ContractRef struct {
	Name    string
	Address common.Address
}

func (r ContractRef) String() string {
	return fmt.Sprintf("%s(%s)", r.Name, r.Address.Hex())
}

// DefaultConfig 返回编译进二进制的网络配置
func DefaultConfig() Config {
	return defaultConfig
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse network config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Network.Rpc == "" {
		return errors.New("network rpc is empty")
	}
	for name, addr := range map[string]string{
		"individual_pool":  c.Contracts.IndividualPool,
		"cooperative_pool": c.Contracts.CooperativePool,
		"yield_aggregator": c.Contracts.YieldAggregator,
		"mezo_integration": c.Contracts.MezoIntegration,
	} {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid %s address %q", name, addr)
		}
	}
	return nil
}

func (c Config) IndividualPool() ContractRef {
	return ContractRef{Name: "IndividualPool", Address: common.HexToAddress(c.Contracts.IndividualPool)}
}

func (c Config) CooperativePool() ContractRef {
	return ContractRef{Name: "CooperativePool", Address: common.HexToAddress(c.Contracts.CooperativePool)}
}

func (c Config) YieldAggregator() ContractRef {
	return ContractRef{Name: "YieldAggregator", Address: common.HexToAddress(c.Contracts.YieldAggregator)}
}

func (c Config) MezoIntegration() ContractRef {
	return ContractRef{Name: "MezoIntegration", Address: common.HexToAddress(c.Contracts.MezoIntegration)}
}
