package wsmodels

type ServerMessage struct {
	Time    string                 `json:"time"`    // время события
	Code    string                 `json:"code"`    // код события
	Msg     string                 `json:"msg"`     // текст события
	Payload map[string]interface{} `json:"payload"` // данные события
}
