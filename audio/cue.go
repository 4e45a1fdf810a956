package audio

// Cue identifies a short sound effect
type Cue int

const (
	CueBump   Cue = iota // walked into something
	CuePickup            // items taken from the floor
	CueDrop              // items put down
	CueDoor              // stepped through a doorway
	CueStairs            // reached a stair
	cueCount
)

var cueNames = [cueCount]string{"bump", "pickup", "drop", "door", "stairs"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}
