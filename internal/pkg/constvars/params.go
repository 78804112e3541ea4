package constvars

const (
	URLParamID    = "id"
	URLParamEmail = "email"
)

const (
	URLQueryParamDate  = "date"
	URLQueryParamEmail = "email"
)
