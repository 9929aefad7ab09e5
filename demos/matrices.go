package demos

// Matrices is the static room: a red floor, a dark cube turned by 30
// degrees floating above a brown table
type Matrices struct {
	*room
}

func NewMatrices() *Matrices {
	return &Matrices{room: newRoom("matrices")}
}
