package onboard_provider

// Request модель запроса на подключение поставщика к леджеру
type Request struct {
	ProviderID int64  // ID поставщика
	Email      string // Email для connected аккаунта
}

// Response модель ответа с созданным леджер-аккаунтом
type Response struct {
	ProviderID int64
	AccountRef string
}
