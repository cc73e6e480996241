package dto

import "github.com/GlebRadaev/ndvmoney/internal/domain"

type RegisterRequestDTO struct {
	Phone        string `json:"phone"`
	FullName     string `json:"fullName"`
	IDNumber     string `json:"idNumber"`
	Address      string `json:"address"`
	IDFront      string `json:"idFront"`
	IDBack       string `json:"idBack"`
	RefZalo      string `json:"refZalo"`
	Relationship string `json:"relationship"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}
