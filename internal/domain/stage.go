package domain

// Stage representa uma etapa do funil de vendas de um tenant
type Stage struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Order    int    `json:"order"`
}
