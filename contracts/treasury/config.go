package main

import (
	"treasury_suite/contracts/core"
	"treasury_suite/sdk"
)

const adminPermission = "treasury_admin"

// requireAdmin gates every mutating admin operation. With an admin authority
// contract configured the caller is validated there; otherwise the caller must
// match the config admin address.
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
		sdk.Abort("treasury already initialized")
	}
	var p InitPayload
	fromJSON(*payload, &p, "init")
	if p.Admin == "" || p.Multisig == "" {
		sdk.Abort("init: admin and multisig required")
	}
	saveConfig(Config{
		Admin:          sdk.Address(p.Admin),
		AdminAuthority: p.AdminAuthority,
		Multisig:       sdk.Address(p.Multisig),
		ViewingKey:     p.ViewingKey,
		CodeHash:       p.CodeHash,
	})
	saveRunLevel(core.RunLevelNormal)
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
	if p.Multisig != "" {
		cfg.Multisig = sdk.Address(p.Multisig)
	}
	saveConfig(cfg)
	return result("config updated")
}

func SetRunLevel(payload *string) *string {
	cfg := loadConfig()
	requireAdmin(cfg)
	var p RunLevelPayload
	fromJSON(*payload, &p, "run level")
	level := core.ParseRunLevel(p.Level)
	saveRunLevel(level)
	emitRunLevel(level)
	return result("run level " + level.String())
}
