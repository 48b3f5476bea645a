package models

// Saldo represents the balance summary over a user's transactions
type Saldo struct {
	TotalEntradas float64 `json:"total_entradas"`
	TotalSaidas   float64 `json:"total_saidas"`
	Saldo         float64 `json:"saldo"`
}

// Token is the response body of a successful login
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
