package diagram

import "github.com/google/uuid"

// ClientToken is a human-correlatable identifier logged alongside a
// relay Id. It never crosses the wire and has no bearing on equality or
// ordering — it exists only so operators can grep one connection's
// activity across log lines spanning a reconnect (which mints a new Id
// but, in principle, could reuse a token supplied by the caller).
type ClientToken uuid.UUID

// NewClientToken returns a fresh random token.
func NewClientToken() ClientToken {
	return ClientToken(uuid.New())
}

func (t ClientToken) String() string {
	return uuid.UUID(t).String()
}
