package dto

type ElectRequestDTO struct {
	TaskID int `json:"task_id" example:"42"`
}

type ElectResponseDTO struct {
	Elected  bool   `json:"elected" example:"true"`
	Username string `json:"username,omitempty" example:"octocat"`
	Provider string `json:"provider,omitempty" example:"github"`
}
