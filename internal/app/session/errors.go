package session

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrNoSession       = errors.New("no active dungeon")
	ErrUnknownDungeon  = errors.New("unknown dungeon")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUnknownRoom     = errors.New("unknown room")
	ErrUnknownPath     = errors.New("unknown path")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInEncounter     = errors.New("not available during an encounter")
	ErrNotInEncounter  = errors.New("no encounter in progress")
	ErrNoPathPending   = errors.New("no path choice pending")
	ErrExitNotReached  = errors.New("exit room not reached")
	ErrCharacterLookup = errors.New("character lookup failed")
	ErrRunPersistence  = errors.New("could not persist run start")
)
