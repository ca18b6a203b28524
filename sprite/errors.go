package sprite

import "errors"

// Sentinel errors returned by SpriteList, SpatialHash, and the collision
// query entry points. Callers should test with errors.Is; returned errors
// carry additional context via wrapping.
var (
	// ErrDuplicateSprite is returned when inserting a sprite that already
	// occupies a slot in the same list.
	ErrDuplicateSprite = errors.New("sprite: already in list")

	// ErrNotFound is returned when removing or updating a sprite that is
	// absent from the list or spatial hash.
	ErrNotFound = errors.New("sprite: not found")

	// ErrUninitialized is returned when a device-level operation runs
	// before a renderer has been attached.
	ErrUninitialized = errors.New("sprite: renderer not attached")

	// ErrInvalidArgument is returned by query entry points for eagerly
	// rejected arguments, such as nil sprites or out-of-range indices.
	ErrInvalidArgument = errors.New("sprite: invalid argument")
)
