package discord

// Replies for cases the shared command layer leaves silent
const (
	MsgNothingToConfirm = "Нет запросов, ожидающих подтверждения."
	MsgNoReply          = "Команда недоступна."
	MsgGenericError     = "❌ Что-то пошло не так."
)
