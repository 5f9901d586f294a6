package sdk

import "encoding/json"

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env is the per-transaction snapshot the host hands to the contract.
type Env struct {
	ContractId string   `json:"contract.id"`
	TxId       string   `json:"tx.id"`
	BlockId    string   `json:"block.id"`
	Timestamp  string   `json:"block.timestamp"`
	Sender     Sender   `json:"-"`
	Intents    []Intent `json:"intents,omitempty"`
}

// envFromJSON maps the raw env blob onto the Env struct. The sender block
// uses flat msg.* keys in the host payload, so it is lifted out by hand.
func envFromJSON(raw string) Env {
	env := Env{}
	json.Unmarshal([]byte(raw), &env)

	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(raw), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender := ""
	if s, ok := envMap["msg.sender"].(string); ok {
		sender = s
	}
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	return env
}
