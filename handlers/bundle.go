package handlers

import (
	userRepoPkg "taily/database/repository/user"
)

// HandlerBundle groups the endpoint handlers plus the repo the auth
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	User     *UserHandler
	Provider *ProviderHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Request  *RequestHandler
	Chat     *ChatHandler
	Blog     *BlogHandler
	Admin    *AdminHandler
	Storage  *StorageHandler
}
