package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to tell user/contract/system addresses apart.
// Adapters and token ledgers live in the contract domain.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsContract is a shorthand for the domain check used on adapter registration.
func (a Address) IsContract() bool {
	return a.Domain() == AddressDomainContract
}
