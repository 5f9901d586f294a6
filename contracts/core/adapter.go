package core

import "treasury_suite/sdk"

// Client side of the adapter capability: the uniform interface every
// downstream yield strategy (and the treasury manager itself, toward the
// treasury) exposes. Queries answer with an AmountResponse envelope;
// instructions are fire-and-forget within the transaction.

func adapterQuery(contract, method string, query AssetQuery) Amount {
	raw := sdk.ContractCall(contract, method, MarshalMsg(query))
	var resp AmountResponse
	UnmarshalResponse(raw, &resp, "adapter "+method)
	return resp.Amount
}

// AdapterBalance reports funds the adapter currently holds for the asset.
func AdapterBalance(contract, asset string) Amount {
	return adapterQuery(contract, "balance", AssetQuery{Asset: asset})
}

// AdapterClaimable reports funds already released and waiting to be claimed.
func AdapterClaimable(contract, asset string) Amount {
	return adapterQuery(contract, "claimable", AssetQuery{Asset: asset})
}

// AdapterUnbonding reports funds inside the adapter's unbonding period.
func AdapterUnbonding(contract, asset string) Amount {
	return adapterQuery(contract, "unbonding", AssetQuery{Asset: asset})
}

// AdapterUnbondable reports how much could still be recalled right now.
func AdapterUnbondable(contract, asset string) Amount {
	return adapterQuery(contract, "unbondable", AssetQuery{Asset: asset})
}

// Holder-scoped variants, used by the treasury against manager-type spenders
// whose books are split per holder.

func AdapterBalanceFor(contract, asset, holder string) Amount {
	return adapterQuery(contract, "balance", AssetQuery{Asset: asset, Holder: holder})
}

func AdapterClaimableFor(contract, asset, holder string) Amount {
	return adapterQuery(contract, "claimable", AssetQuery{Asset: asset, Holder: holder})
}

func AdapterUnbondingFor(contract, asset, holder string) Amount {
	return adapterQuery(contract, "unbonding", AssetQuery{Asset: asset, Holder: holder})
}

func AdapterUnbondableFor(contract, asset, holder string) Amount {
	return adapterQuery(contract, "unbondable", AssetQuery{Asset: asset, Holder: holder})
}

// AdapterUnbond instructs the adapter to start releasing amount of asset.
func AdapterUnbond(contract, asset string, amount Amount) {
	sdk.ContractCall(contract, "unbond", MarshalMsg(UnbondMsg{Asset: asset, Amount: amount}))
}

// AdapterClaim pulls whatever the adapter has already released.
func AdapterClaim(contract, asset string) {
	sdk.ContractCall(contract, "claim", MarshalMsg(ClaimMsg{Asset: asset}))
}

// AdapterUpdate nudges the adapter to rebalance its own books.
func AdapterUpdate(contract, asset string) {
	sdk.ContractCall(contract, "update", MarshalMsg(ClaimMsg{Asset: asset}))
}
