// Package story defines the entities of a NyxVenture game: the Game root and
// the chapters, links, features, skills, character types and artifacts it
// holds. Every entity embeds node.Base, so it reports its own field changes on
// its local channel and forwards changes of owned children on its bubble
// channel.
//
// Container entities follow one pattern for every slot. CreateX builds a new
// child and owns it, so its field changes bubble to the container. AddX and
// SetX insert an existing entity for membership only and never wire
// bubbling. OwnX inserts an existing entity and wires it. RemoveX detaches an
// owned child before it leaves the slot. Each of these notifies the
// container's local channel with the slot name ("Features", "StartChapter").
//
// Point tables on CharacterType and the artifacts placed in a Chapter hold
// entities owned elsewhere and never wire bubbling.
package story
