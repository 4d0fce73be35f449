package client

// DefaultNoShowLimit is the number of no-shows after which a client is blocked.
const DefaultNoShowLimit = 3

func ShouldBlock(currentNoShows, limit int) bool {
	return currentNoShows >= limit
}
