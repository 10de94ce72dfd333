package csscolor

import "fmt"

// UnknownSpaceError is returned when a color space name is not in the
// registry.
type UnknownSpaceError struct {
	Name string
}

func (e *UnknownSpaceError) Error() string {
	return fmt.Sprintf("unknown color space %q", e.Name)
}

// ChannelNotFoundError is returned when a named channel does not exist on
// the color's space.
type ChannelNotFoundError struct {
	Space Space
	Name  string
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("color space %s has no channel %q", e.Space, e.Name)
}
