package entities

// DemoListSize is the maximum number of media rows referenced by a demo list.
const DemoListSize = 5

// DemoListOffsetCycle is the modulus of the rotating title offset.
const DemoListOffsetCycle = 3

// DemoList is a starter list derived for one (user, media type) pair.
// Items are resolved by the database from title order, so the list only
// carries the selection window.
type DemoList struct {
	UserEmail   string
	Name        string
	Description string
	MediaType   MediaType
	Offset      int
	Limit       int
}
