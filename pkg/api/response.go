package api

// Response представляет общий конверт ответа backend.
// Все операции возвращают одну и ту же форму, содержимое Data зависит от операции:
// список серверов для коллекций, одна запись для ping/save.
type Response struct {
	Timestamp        string `json:"timestamp"`                  // время формирования ответа на стороне backend
	Status           string `json:"status"`                     // текстовый HTTP статус (например, "OK")
	Reason           string `json:"reason,omitempty"`           // причина ошибки
	Message          string `json:"message"`                    // сообщение для пользователя
	DeveloperMessage string `json:"developerMessage,omitempty"` // сообщение для разработчика
	Data             Data   `json:"data"`
	StatusCode       int    `json:"statusCode"` // числовой HTTP статус
}

// Data представляет полезную нагрузку конверта
type Data struct {
	Server  *Server  `json:"server,omitempty"`  // одиночная запись (ping, save)
	Servers []Server `json:"servers,omitempty"` // коллекция (list, filter, delete)
}

// Clone returns a deep copy of the envelope so that callers may change the
// server list without touching the original.
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	out := *r
	if r.Data.Servers != nil {
		out.Data.Servers = make([]Server, len(r.Data.Servers))
		copy(out.Data.Servers, r.Data.Servers)
	}
	if r.Data.Server != nil {
		server := *r.Data.Server
		out.Data.Server = &server
	}
	return &out
}

// ErrorResponse представляет тело ответа с ошибкой.
// Backend может вернуть либо Response, либо стандартное тело ошибки, поэтому
// поля объединены.
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
	Reason  string `json:"reason,omitempty"`  // причина из Response
}
