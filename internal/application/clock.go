package application

import (
	"time"

	"github.com/google/uuid"
)

type Clock interface{ Now() time.Time }

type IDGen interface{ New() string }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type defaultIDGen struct{}

func (defaultIDGen) New() string { return uuid.NewString() }
