package handler

import (
	"interviewbot/internal/app/interview"
	"interviewbot/internal/app/session"
	"interviewbot/internal/configs"
	"interviewbot/internal/view"
)

// AppDeps holds everything the HTTP handlers need.
type AppDeps struct {
	Config    *configs.AppConfig
	Sessions  *session.Manager
	Interview *interview.Service
	View      *view.Renderer
}
