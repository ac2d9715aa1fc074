package util

const (
	MimeVideo       = "video/"
	MimeMP4         = "video/mp4"
	MimeOctetStream = "application/octet-stream"
)

// HeaderUserID carries the caller identity on every authenticated endpoint.
const HeaderUserID = "X-User-Id"

var AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".webm"}
