package manabench

import (
	"errors"
	"fmt"
)

// MulliganPolicy decides whether an opening hand is worth keeping.
//
// Policies see only the hand size and its land count; for manabase analysis
// nothing else about the hand matters. The closed set of implementations is
// ClassicMulligan (fully supported) and SevenCardMulligan (a declared but
// unsupported placeholder).
type MulliganPolicy interface {
	// ShouldKeep reports whether a hand of handSize cards containing
	// landsInHand lands should be kept. An unsupported policy returns an
	// error wrapping errors.ErrUnsupported.
	ShouldKeep(handSize, landsInHand int) (bool, error)
}

// ClassicMulligan is the decreasing-hand-size protocol: each mulligan draws a
// fresh, one-card-smaller hand.
//
// The keep ranges are a fixed decision table taken from competitive play, not
// derived from the cost or turn under test:
//
//	7 cards: keep with 2–5 lands
//	6 cards: keep with 2–4 lands
//	5 cards: keep with 1–4 lands
//	4 cards or fewer: always keep
type ClassicMulligan struct{}

func (ClassicMulligan) ShouldKeep(handSize, landsInHand int) (bool, error) {
	switch {
	case handSize >= 7:
		return landsInHand >= 2 && landsInHand <= 5, nil
	case handSize == 6:
		return landsInHand >= 2 && landsInHand <= 4, nil
	case handSize == 5:
		return landsInHand >= 1 && landsInHand <= 4, nil
	default:
		return true, nil
	}
}

// SevenCardMulligan is the replacement protocol where every mulligan draws a
// fresh seven and bottoms the excess. Its keep thresholds have not been
// specified, so any invocation fails; callers can detect the gap with
// errors.Is(err, errors.ErrUnsupported).
type SevenCardMulligan struct{}

func (SevenCardMulligan) ShouldKeep(handSize, landsInHand int) (bool, error) {
	return false, fmt.Errorf("seven-card mulligan: %w", errors.ErrUnsupported)
}
