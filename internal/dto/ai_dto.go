package dto

import "compogen/internal/entity"

type GenerateRequest struct {
	Prompt  string `json:"prompt" validate:"required"`
	Context string `json:"context"`
}

type AIChatRequest struct {
	Message string               `json:"message" validate:"required"`
	History []entity.ChatMessage `json:"history"`
}

type RefineRequest struct {
	CurrentCode  entity.GeneratedCode `json:"currentCode" validate:"required"`
	Instructions string               `json:"instructions" validate:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}
