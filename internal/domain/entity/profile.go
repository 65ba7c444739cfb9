package entity

// ProfileInventory summarizes one profile's pass: which account it resolved
// to and which regions were visited.
type ProfileInventory struct {
	Profile   string   `json:"profile"`
	AccountID string   `json:"account_id"`
	Regions   []string `json:"regions"`
}
