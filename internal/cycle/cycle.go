// Package cycle decides which preset in a zone's sequence a window should
// advance to next. Invocations are independent stateless calls; continuity
// comes from a stored (index, fingerprint) pair owned by the caller plus a
// fuzzy nearest-match fallback when the stored state no longer describes
// reality.
package cycle

import (
	"github.com/ssokolow/quicktile/internal/geometry"
)

// FingerprintTolerance is how far (per edge, in pixels) the observed window
// rectangle may drift from the last-applied one before stored cycle state is
// discarded. Window managers nudge coordinates by a few pixels when applying
// geometry, so exact comparison would invalidate nearly every resume.
const FingerprintTolerance = 4

// State is the persisted position of a window within one zone's preset
// sequence: the last-applied index and the rectangle that was actually
// applied (post-margin, post-clamp). Storage belongs to the caller; this
// package only computes what to store and interprets what was read back.
type State struct {
	Zone        int
	Index       int
	LastApplied geometry.Rect
}

// Matches reports whether the observed window geometry still corresponds to
// the rectangle this state recorded, within FingerprintTolerance.
func (s State) Matches(observed geometry.Rect) bool {
	return abs(observed.X-s.LastApplied.X) <= FingerprintTolerance &&
		abs(observed.Y-s.LastApplied.Y) <= FingerprintTolerance &&
		abs(observed.Width-s.LastApplied.Width) <= FingerprintTolerance &&
		abs(observed.Height-s.LastApplied.Height) <= FingerprintTolerance
}

// Scorer rates how closely a window's rectangle resembles a preset
// candidate. Lower is closer. Kept behind an interface so the tolerance
// heuristics can be tuned and tested apart from the state machine.
type Scorer interface {
	Score(window, candidate geometry.Rect) float64
}

// ToleranceScorer is the default Scorer: a weighted sum of position and
// size deltas. Position counts double because users judge "where the window
// is" before "how big it is", and decorations perturb size more than
// position.
type ToleranceScorer struct {
	PosWeight  float64
	SizeWeight float64
}

// DefaultScorer returns the scoring weights used by the shipped commands.
func DefaultScorer() ToleranceScorer {
	return ToleranceScorer{PosWeight: 2, SizeWeight: 1}
}

func (t ToleranceScorer) Score(window, candidate geometry.Rect) float64 {
	pos := float64(abs(window.X-candidate.X) + abs(window.Y-candidate.Y))
	size := float64(abs(window.Width-candidate.Width) + abs(window.Height-candidate.Height))
	return t.PosWeight*pos + t.SizeWeight*size
}

// NextIndex picks the sequence index the window should move to.
//
// With valid stored state (same zone, index within the freshly generated
// sequence, fingerprint matching the observed geometry) the cycle simply
// advances one step with wrap-around. Otherwise the cycle is treated as
// uninitialized: the candidate most similar to the window's current
// rectangle is located and the step lands on the index after it, so the
// first press moves to "the next logical step from wherever the window
// already is". Ties break toward the lowest index.
func NextIndex(stored *State, zone int, seq []geometry.Rect, observed geometry.Rect, scorer Scorer) int {
	if len(seq) == 0 {
		return 0
	}

	if stored != nil && stored.Zone == zone &&
		stored.Index >= 0 && stored.Index < len(seq) &&
		stored.Matches(observed) {
		return (stored.Index + 1) % len(seq)
	}

	best := 0
	bestScore := scorer.Score(observed, seq[0])
	for i := 1; i < len(seq); i++ {
		if s := scorer.Score(observed, seq[i]); s < bestScore {
			best, bestScore = i, s
		}
	}

	return (best + 1) % len(seq)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
