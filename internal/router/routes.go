package router

import "fmt"

const (
	HealthPath   = "/health"
	InfoPath     = "/info"
	ModelsPath   = "/models"
	RegisterPath = "/register"
	TokenPath    = "/token"
	UserPath     = "/user"
	ChatPath     = "/chat"

	EmailParam = "email"
)

func EmailRoute(s string) string {
	return fmt.Sprintf(s, EmailParam)
}
