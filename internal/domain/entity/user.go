package entity

import "time"

// User usuario del sistema. La contraseña se guarda hasheada con bcrypt,
// nunca en claro.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
