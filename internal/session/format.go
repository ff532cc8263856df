package session

import (
	"fmt"
	"strconv"
)

// FormatRemaining renders seconds as M:SS.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatScore renders the score line as <correct>/<total>.
func FormatScore(state Session) string {
	return strconv.Itoa(state.Score) + "/" + strconv.Itoa(state.Total())
}
