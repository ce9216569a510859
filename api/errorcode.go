package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",

		1300: "dashboard data is not ready",
		1301: "world map is not registered",
	}

	errorInternalServer    = errorJSON(999)
	errorInvalidParameters = errorJSON(1010)

	errorDataNotReady     = errorJSON(1300)
	errorMapNotRegistered = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
