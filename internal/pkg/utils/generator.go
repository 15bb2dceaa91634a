package utils

import (
	"clinic-console-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateExportObjectName builds "<resource>/<user>-<timestamp>.csv".
func GenerateExportObjectName(resource, userID string, now time.Time) string {
	return fmt.Sprintf(constvars.ExportObjectNameFormat, resource, userID, now.UTC().Format("20060102_150405.000000000"))
}
