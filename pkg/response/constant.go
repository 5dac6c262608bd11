package response

const (
	MessageSuccess = "Success"

	ValidationErrorCode     = 400
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
)
