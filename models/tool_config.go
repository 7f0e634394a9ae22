// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"net/url"
	"strings"
)

const (
	// SolidityVersion is the compiler version every build targets.
	SolidityVersion = "0.8.24"

	// NetworkSepolia is the name of the only network entry.
	NetworkSepolia = "sepolia"

	// AccountPrefix is prepended to the raw signing key.
	AccountPrefix = "0x"
)

// ToolConfig is the settings record consumed by the contract build/deploy tool.
//
// A ToolConfig is constructed once and never mutated afterwards. Networks and
// Accounts are reference types, so callers that need a modified copy must use
// [ToolConfig.Clone].
type ToolConfig struct {
	// SolidityVersion is the compiler version identifier.
	SolidityVersion string

	// Networks maps a network name to its endpoint and signing keys.
	Networks map[string]NetworkSettings

	// EtherscanAPIKey is the credential of the contract-verification service.
	// Empty when the variable was not set.
	EtherscanAPIKey string
}

// NetworkSettings describes a single target network.
type NetworkSettings struct {
	// URL is the RPC endpoint. Empty when not configured.
	URL string `json:"url,omitempty"`

	// Accounts are the signing keys in 0x-prefixed hex form.
	Accounts []string `json:"accounts"`
}

type etherscanSettings struct {
	APIKey string `json:"apiKey,omitempty"`
}

type toolConfigJSON struct {
	Solidity  string                     `json:"solidity"`
	Networks  map[string]NetworkSettings `json:"networks"`
	Etherscan etherscanSettings          `json:"etherscan"`
}

// MarshalJSON encodes the config in the layout the consuming tool expects:
// "solidity", "networks" and "etherscan.apiKey".
func (c ToolConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(toolConfigJSON{
		Solidity:  c.SolidityVersion,
		Networks:  c.Networks,
		Etherscan: etherscanSettings{APIKey: c.EtherscanAPIKey},
	})
}

// UnmarshalJSON decodes the layout produced by MarshalJSON.
func (c *ToolConfig) UnmarshalJSON(b []byte) error {
	var raw toolConfigJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.SolidityVersion = raw.Solidity
	c.Networks = raw.Networks
	c.EtherscanAPIKey = raw.Etherscan.APIKey
	return nil
}

// Clone returns a deep copy of c.
func (c ToolConfig) Clone() ToolConfig {
	out := ToolConfig{
		SolidityVersion: c.SolidityVersion,
		EtherscanAPIKey: c.EtherscanAPIKey,
	}
	if c.Networks != nil {
		out.Networks = make(map[string]NetworkSettings, len(c.Networks))
		for name, n := range c.Networks {
			out.Networks[name] = NetworkSettings{
				URL:      n.URL,
				Accounts: append([]string(nil), n.Accounts...),
			}
		}
	}
	return out
}

// Redacted returns a copy of c safe for logs: signing keys, the explorer
// key and the path, query and credentials of every RPC URL are masked.
// Scheme and host of the URLs are kept.
func (c ToolConfig) Redacted() ToolConfig {
	out := c.Clone()
	for name, n := range out.Networks {
		n.URL = maskURL(n.URL)
		for i, acc := range n.Accounts {
			n.Accounts[i] = AccountPrefix + mask(strings.TrimPrefix(acc, AccountPrefix))
		}
		out.Networks[name] = n
	}
	out.EtherscanAPIKey = mask(out.EtherscanAPIKey)
	return out
}

// maskURL keeps scheme and host of raw and masks the rest. RPC providers
// put the API key into the path (e.g. /v2/<key>) or the query.
func maskURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return mask(raw)
	}

	var b strings.Builder
	b.WriteString(u.Scheme + "://" + u.Host)
	if p := strings.TrimPrefix(u.Path, "/"); p != "" {
		b.WriteString("/" + mask(p))
	}
	if u.RawQuery != "" {
		b.WriteString("?" + mask(u.RawQuery))
	}
	return b.String()
}

// mask hides a secret, leaving the last four characters of long values visible.
func mask(s string) string {
	r := []rune(s)
	switch {
	case len(r) == 0:
		return ""
	case len(r) <= 8:
		return "****"
	default:
		return "****" + string(r[len(r)-4:])
	}
}
