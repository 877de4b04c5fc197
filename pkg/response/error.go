package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MovieNotFound  = "Movie not found"
	MoviesNotFound = "Movies not found"
	GenresNotFound = "Genres not found"
	//----------------------
	UserNotFound  = "Cannot find user"
	EmailNotFound = "Cannot find user email"
	//----------------------
	InvalidToken   = "Invalid/Stale Token"
	BadRequestBody = "Incorrect request body"
	//----------------------
	EmailAlreadyExist    = "This email already exists"
	UsernameAlreadyExist = "This username already exists"
	AlreadyInWatchList   = "Movie already exists in watch list"
	//----------------------
	UserPassNotMatch = "Email and password do not match"
	//----------------------
	FeedUnavailable = "Movie feed is not reachable"
	SyncFailed      = "Movie sync failed"
	//----------------------
)
