package dto

type CreateWalletRequestDTO struct {
	ProjectID  int    `json:"project_id" example:"3"`
	Kind       string `json:"kind" example:"STRIPE"`
	Identifier string `json:"identifier" example:"acct_1abc"`
	Cash       int64  `json:"cash" example:"100000"`
}

type WalletResponseDTO struct {
	ID         int    `json:"id" example:"2"`
	ProjectID  int    `json:"project_id" example:"3"`
	Kind       string `json:"kind" example:"STRIPE"`
	Identifier string `json:"identifier" example:"acct_1abc"`
	Cash       int64  `json:"cash" example:"100000"`
	Active     bool   `json:"active" example:"true"`
}

type AvailableResponseDTO struct {
	Available int64 `json:"available" example:"45000"`
}

type AttachPaymentMethodRequestDTO struct {
	Identifier string `json:"identifier" example:"pm_1abc"`
}

type PaymentMethodResponseDTO struct {
	ID         int    `json:"id" example:"4"`
	WalletID   int    `json:"wallet_id" example:"2"`
	Identifier string `json:"identifier" example:"pm_1abc"`
	Active     bool   `json:"active" example:"true"`
}

type AddPayoutMethodRequestDTO struct {
	Kind       string `json:"kind" example:"CARD"`
	Identifier string `json:"identifier" example:"4561261212345467"`
	Country    string `json:"country" example:"DE"`
	TaxID      string `json:"tax_id" example:"DE123456789"`
}

type PayoutMethodResponseDTO struct {
	ID         int    `json:"id" example:"6"`
	Kind       string `json:"kind" example:"CARD"`
	Identifier string `json:"identifier" example:"4561261212345467"`
	Country    string `json:"country" example:"DE"`
	TaxID      string `json:"tax_id" example:"DE123456789"`
	Active     bool   `json:"active" example:"true"`
}

type SetupHandleResponseDTO struct {
	Token string `json:"token" example:"seti_1abc_secret"`
}
