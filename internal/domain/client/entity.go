package client

type Client struct {
	ID      string
	Name    string
	Phone   string
	NoShows int
	Blocked bool
}

// WithNoShow returns a copy with the counter incremented and blocked
// once the counter reaches limit.
func (c Client) WithNoShow(limit int) Client {
	c.NoShows++
	if ShouldBlock(c.NoShows, limit) {
		c.Blocked = true
	}
	return c
}

func (c Client) Unblocked() Client {
	c.Blocked = false
	return c
}
