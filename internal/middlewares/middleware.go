package middlewares

type middleware struct {
	adminAPIKey string
}

func NewMiddleware(adminAPIKey string) *middleware {
	return &middleware{
		adminAPIKey: adminAPIKey,
	}
}
