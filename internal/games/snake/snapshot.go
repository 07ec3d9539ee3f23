package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the game state for determinism testing and debug output.
type Snapshot struct {
	Tick        uint64
	SnakeLen    int
	HeadX       int
	HeadY       int
	Dir         core.Direction
	AppleX      int
	AppleY      int
	AppleExists bool
	Over        bool
}

// Snapshot returns the current game snapshot.
func (st *State) Snapshot() Snapshot {
	head := st.snake.Head()
	return Snapshot{
		Tick:        st.tick,
		SnakeLen:    st.snake.Len(),
		HeadX:       head.Pos.X,
		HeadY:       head.Pos.Y,
		Dir:         head.Dir,
		AppleX:      st.apple.Pos.X,
		AppleY:      st.apple.Pos.Y,
		AppleExists: st.apple.Exists,
		Over:        st.over,
	}
}

func (s Snapshot) String() string {
	apple := "none"
	if s.AppleExists {
		apple = core.C(s.AppleX, s.AppleY).String()
	}
	return fmt.Sprintf("tick=%d len=%d head=%v dir=%v apple=%s over=%v",
		s.Tick, s.SnakeLen, core.C(s.HeadX, s.HeadY), s.Dir, apple, s.Over)
}
