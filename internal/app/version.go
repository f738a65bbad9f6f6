package app

const ServiceName = "student-service"

// Set at build time:
//
//	go build -ldflags="-X 'student-service/internal/app.Version=1.0.0' -X 'student-service/internal/app.GitCommit=$(git rev-parse --short HEAD)'"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
