package tokenizer

// ContainerKind is the kind of an open block container.
type ContainerKind uint8

const (
	ContainerBlockQuote ContainerKind = iota
	ContainerListItem
)

// String returns the container kind's name.
func (k ContainerKind) String() string {
	if k == ContainerBlockQuote {
		return "BlockQuote"
	}
	return "ListItem"
}

// ContainerState is one frame of the document engine's container stack.
type ContainerState struct {
	Kind ContainerKind

	// BlankInitial records that the container's first line held no content;
	// such a list item cannot be continued by another blank line.
	BlankInitial bool

	// Size is the prefix width a continuation line must reproduce.
	Size int
}
