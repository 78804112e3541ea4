package utils

import (
	"doctors-portal-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateObjectName builds a collision free object key keeping the extension
// of the uploaded file, e.g. "doctors/3f2c....png".
func GenerateObjectName(folder, extension string) string {
	return folder + "/" + uuid.NewString() + extension
}
