package game

//go:generate go run github.com/dmarkham/enumer -type Direction -trimprefix Direction -transform lower -json -output direction.gen.go

// Direction is one of the four moves a snake can answer with.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Delta returns the (dx, dy) offset of one step in the direction.
func (i Direction) Delta() (dx, dy int) {
	switch i {
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}
