package responses

type BaseResponse struct {
	ErrorMessage string      `json:"error_message,omitempty"`
	Result       interface{} `json:"result"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

const StatusOK = "ok"
