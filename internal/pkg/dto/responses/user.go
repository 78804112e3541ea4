package responses

type IsAdmin struct {
	IsAdmin bool `json:"isAdmin"`
}

type CreateUser struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
