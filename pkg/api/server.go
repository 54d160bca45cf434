package api

import "fmt"

// Status представляет состояние сервера, которое возвращает backend
type Status string

const (
	StatusUp   Status = "SERVER_UP"   // сервер отвечает на ping
	StatusDown Status = "SERVER_DOWN" // сервер недоступен
)

// Valid reports whether s is one of the statuses known to the backend.
func (s Status) Valid() bool {
	return s == StatusUp || s == StatusDown
}

// Label returns the human readable status used in messages and badges.
func (s Status) Label() string {
	switch s {
	case StatusUp:
		return "SERVER UP"
	case StatusDown:
		return "SERVER DOWN"
	default:
		return string(s)
	}
}

// ParseStatus parses a status as it is written on the wire.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown server status %q", raw)
	}
	return s, nil
}

// Server представляет запись о сервере
type Server struct {
	IPAddress string `json:"ipAddress"` // IP адрес, по которому выполняется ping
	Name      string `json:"name"`      // отображаемое имя
	Memory    string `json:"memory"`    // объем памяти, как его ввел пользователь (например, "16 GB")
	Type      string `json:"type"`      // тип сервера (например, "Dell Tower Server")
	Status    Status `json:"status"`    // SERVER_UP или SERVER_DOWN
	ID        int64  `json:"id"`        // идентификатор, назначенный backend
}

// ServerInput представляет данные формы создания сервера (без id)
type ServerInput struct {
	IPAddress string `json:"ipAddress" validate:"required,ip"`
	Name      string `json:"name" validate:"required,max=255"`
	Memory    string `json:"memory" validate:"required,max=64"`
	Type      string `json:"type" validate:"required,max=255"`
	Status    Status `json:"status" validate:"required,oneof=SERVER_UP SERVER_DOWN"`
}
