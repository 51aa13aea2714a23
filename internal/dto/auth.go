package dto

type RegisterRequestDTO struct {
	Username string `json:"username" example:"octocat"`
	Provider string `json:"provider" example:"github"`
	Password string `json:"password" example:"secret"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"octocat"`
	Provider string `json:"provider" example:"github"`
	Password string `json:"password" example:"secret"`
}
