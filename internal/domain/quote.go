package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// Quote is one closing price of one instrument on one date.
type Quote struct {
	Date   time.Time
	Symbol string
	Close  null.Float
}
