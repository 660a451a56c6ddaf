package contract

import "github.com/alexanderramin/crewboard/internal/app"

type TaskView = app.TaskView

type StatusCounts = app.StatusCounts

type RequestErrorCode = app.RequestErrorCode

const (
	ErrInvalidScope   RequestErrorCode = app.ErrInvalidScope
	ErrInvalidVariant RequestErrorCode = app.ErrInvalidVariant
	ErrInvalidPeriod  RequestErrorCode = app.ErrInvalidPeriod
	ErrInvalidWindow  RequestErrorCode = app.ErrInvalidWindow
)

type RequestError = app.RequestError
