package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	// Image is an optional data URL, e.g. "data:image/png;base64,iVBOR...".
	Image string `json:"image" validate:"omitempty,datauri"`
}
