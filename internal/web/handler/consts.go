package handler

const (
	// RouterRootPath is the root path inside a route group.
	RouterRootPath = "/"

	// IDParam is the route parameter carrying a numeric primary key.
	IDParam = "/:id<int>"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
