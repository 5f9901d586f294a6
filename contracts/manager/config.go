package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

const adminPermission = "manager_admin"

func requireAdmin(cfg Config) {
	caller := core.Sender()
	if cfg.AdminAuthority != "" {
		query := core.ValidateAdminQuery{
			User:       caller.String(),
			Permission: adminPermission,
		}
		raw := sdk.ContractCall(cfg.AdminAuthority, "validate_admin_permission", core.MarshalMsg(&query))
		var resp core.ValidateAdminResponse
		core.UnmarshalResponse(raw, &resp, "admin authority")
		if resp.ErrorMsg != "" {
			sdk.Abort("unauthorized: " + resp.ErrorMsg)
		}
		return
	}
	if caller != cfg.Admin {
		sdk.Abort("unauthorized")
	}
}

func Init(payload *string) *string {
	if sdk.StateGetObject(kConfig) != nil {
		sdk.Abort("manager already initialized")
	}
	var p InitPayload
	fromJSON(*payload, &p, "init")
	if p.Admin == "" || p.Treasury == "" {
		sdk.Abort("init: admin and treasury required")
	}
	saveConfig(Config{
		Admin:          sdk.Address(p.Admin),
		AdminAuthority: p.AdminAuthority,
		Treasury:       sdk.Address(p.Treasury),
		ViewingKey:     p.ViewingKey,
		CodeHash:       p.CodeHash,
	})
	// the treasury's book exists from the start; everything unassigned
	// accrues to it
	saveHolderIndex([]string{p.Treasury})
	saveHolding(p.Treasury, Holding{Status: core.StatusActive})
	return result("initialized")
}

func UpdateConfig(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p UpdateConfigPayload
	fromJSON(*payload, &p, "update config")
	if p.Admin != "" {
		cfg.Admin = sdk.Address(p.Admin)
	}
	if p.AdminAuthority != "" {
		cfg.AdminAuthority = p.AdminAuthority
	}
	if p.Treasury != "" {
		sdk.Abort("treasury address is immutable")
	}
	saveConfig(cfg)
	return result("config updated")
}
