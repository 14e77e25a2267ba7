package models

// Caller is the already-authenticated identity a request runs as
type Caller struct {
	UserID             int64
	CustomerID         int64
	AssignedAccountIDs []int64
}

// HasAccount reports whether accountID is in the caller's assignment
func (c Caller) HasAccount(accountID int64) bool {
	for _, id := range c.AssignedAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
