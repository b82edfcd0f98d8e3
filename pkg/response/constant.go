package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	DateTimeFormat          = time.RFC3339
)
