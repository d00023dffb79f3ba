package game

import "errors"

// Spawn rejection reasons. TrySpawn logs these and returns nil.
var (
	ErrBudgetExceeded = errors.New("magnet budget exhausted")
	ErrNoTemplate     = errors.New("no spawn template for type")
	ErrInputDisabled  = errors.New("input disabled")
	ErrNoSpawnType    = errors.New("no spawn type selected")
)
